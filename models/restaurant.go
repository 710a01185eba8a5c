package models

import "time"

type Restaurant struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	Address       string    `gorm:"type:varchar(255)" json:"address"`
	Phone         string    `gorm:"type:varchar(30)" json:"phone"`
	Email         string    `gorm:"type:varchar(255)" json:"email"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	AcceptsOrders bool      `gorm:"not null;default:true" json:"accepts_orders"`
	DeliveryTime  int       `gorm:"not null;default:30" json:"delivery_time"` // menit
	MinOrder      float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"min_order"`
	Rating        float64   `gorm:"type:decimal(3,2);not null;default:0.00" json:"rating"`
	RatingCount   int       `gorm:"not null;default:0" json:"rating_count"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}
