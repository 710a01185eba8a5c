package models

import "time"

// Status meja
const (
	TableAvailable  = "available"
	TableOccupied   = "occupied"
	TableReserved   = "reserved"
	TableCleaning   = "cleaning"
	TableOutOfOrder = "out_of_order"
)

type Table struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	RestaurantID   uint       `gorm:"not null;index:idx_restaurant_table_number,unique" json:"restaurant_id"`
	Restaurant     Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	TableNumber    string     `gorm:"type:varchar(50);not null;index:idx_restaurant_table_number,unique" json:"table_number"`
	Name           string     `gorm:"type:varchar(100)" json:"name"`
	Section        string     `gorm:"type:varchar(100)" json:"section"`
	Capacity       int        `gorm:"not null;default:4" json:"capacity"`
	PosX           float64    `gorm:"not null;default:0" json:"pos_x"`
	PosY           float64    `gorm:"not null;default:0" json:"pos_y"`
	Status         string     `gorm:"type:varchar(50);not null;default:'available'" json:"status"`
	IsActive       bool       `gorm:"not null;default:true" json:"is_active"`
	LastOccupiedAt *time.Time `json:"last_occupied_at,omitempty"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null" json:"updated_at"`
}

// ValidTableStatus -> cek apakah status meja dikenal
func ValidTableStatus(status string) bool {
	switch status {
	case TableAvailable, TableOccupied, TableReserved, TableCleaning, TableOutOfOrder:
		return true
	}
	return false
}
