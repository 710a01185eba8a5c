package models

import "time"

type User struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Name         string      `gorm:"type:varchar(255);not null" json:"name"`
	Email        string      `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password     string      `gorm:"type:varchar(255);not null" json:"-"`
	Role         string      `gorm:"type:varchar(20);not null" json:"role"` // admin, staff
	RestaurantID *uint       `gorm:"index" json:"restaurant_id,omitempty"`
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`
}
