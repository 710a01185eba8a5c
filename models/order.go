package models

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Metode pembayaran
const (
	PaymentCard = "card"
	PaymentCash = "cash"
)

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderNumber   string      `gorm:"type:varchar(40);not null;uniqueIndex" json:"order_number"`
	RestaurantID  uint        `gorm:"not null;index" json:"restaurant_id"`
	Restaurant    Restaurant  `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"restaurant"`
	TableID       *uint       `gorm:"index" json:"table_id,omitempty"`
	Table         *Table      `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"table,omitempty"`
	Status        string      `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Total         float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total"`
	Subtotal      float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"subtotal"`
	CustomerName  string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone string      `gorm:"type:varchar(30)" json:"customer_phone"`
	CustomerKey   string      `gorm:"type:varchar(36);not null;index" json:"customer_key"`
	PaymentMethod string      `gorm:"type:varchar(10);not null" json:"payment_method"`
	Notes         string      `gorm:"type:text" json:"notes"`
	EstimatedTime *int        `json:"estimated_time,omitempty"` // menit
	CompletedAt   *time.Time  `json:"completed_at,omitempty"`
	CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems    []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
}

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber -> ORD-<epoch millis>-<9 karakter base36>.
// Keunikan probabilistik, index unik di kolom menjadi jaring pengaman.
func GenerateOrderNumber() string {
	suffix := make([]byte, 9)
	max := big.NewInt(int64(len(base36)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// rand.Reader praktis tidak pernah gagal; fallback ke nol
			suffix[i] = base36[0]
			continue
		}
		suffix[i] = base36[n.Int64()]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
