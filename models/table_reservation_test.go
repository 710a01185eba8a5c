package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservationOverlaps(t *testing.T) {
	base := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)
	existing := TableReservation{
		ReservationDate: base,
		DurationMinutes: 120, // 19:00 - 21:00
	}

	// Mulai di tengah window
	assert.True(t, existing.Overlaps(base.Add(60*time.Minute), 60))
	// Window baru menutupi seluruh window lama
	assert.True(t, existing.Overlaps(base.Add(-30*time.Minute), 240))
	// Berakhir tepat saat window lama mulai -> tidak overlap
	assert.False(t, existing.Overlaps(base.Add(-60*time.Minute), 60))
	// Mulai tepat saat window lama berakhir -> tidak overlap
	assert.False(t, existing.Overlaps(base.Add(120*time.Minute), 60))
	// Jauh setelahnya
	assert.False(t, existing.Overlaps(base.Add(5*time.Hour), 120))
}

func TestReservationEndTime(t *testing.T) {
	r := TableReservation{
		ReservationDate: time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC),
		DurationMinutes: 90,
	}
	assert.Equal(t, time.Date(2024, 1, 1, 20, 30, 0, 0, time.UTC), r.EndTime())
}
