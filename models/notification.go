package models

import "time"

// Notification adalah feed event order untuk staff. Relay websocket tetap
// fire-and-forget; baris ini hanya arsip yang bisa di-list.
type Notification struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	OrderID      *uint      `json:"order_id,omitempty"`
	Order        *Order     `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Event        string     `gorm:"type:varchar(50);not null" json:"event"`
	Message      string     `gorm:"type:text;not null" json:"message"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
}
