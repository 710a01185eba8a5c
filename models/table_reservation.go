package models

import "time"

// Status reservasi
const (
	ReservationConfirmed = "CONFIRMED"
	ReservationCancelled = "CANCELLED"
	ReservationCompleted = "COMPLETED"
)

// DefaultReservationMinutes dipakai jika request tidak menyebut durasi.
const DefaultReservationMinutes = 120

type TableReservation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TableID         uint      `gorm:"not null;index" json:"table_id"`
	Table           Table     `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"table"`
	CustomerName    string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone   string    `gorm:"type:varchar(30)" json:"customer_phone"`
	CustomerEmail   string    `gorm:"type:varchar(255)" json:"customer_email"`
	PartySize       int       `gorm:"not null;default:2" json:"party_size"`
	ReservationDate time.Time `gorm:"not null;index" json:"reservation_date"`
	DurationMinutes int       `gorm:"not null;default:120" json:"duration_minutes"`
	Status          string    `gorm:"type:varchar(20);not null;default:'CONFIRMED'" json:"status"`
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// EndTime -> akhir window reservasi
func (r *TableReservation) EndTime() time.Time {
	return r.ReservationDate.Add(time.Duration(r.DurationMinutes) * time.Minute)
}

// Overlaps melaporkan apakah dua window reservasi beririsan:
// max(start, otherStart) < min(end, otherEnd).
func (r *TableReservation) Overlaps(start time.Time, durationMinutes int) bool {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	otherStart := r.ReservationDate
	otherEnd := r.EndTime()

	latestStart := start
	if otherStart.After(latestStart) {
		latestStart = otherStart
	}
	earliestEnd := end
	if otherEnd.Before(earliestEnd) {
		earliestEnd = otherEnd
	}
	return latestStart.Before(earliestEnd)
}
