package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-platform/models"
	"github.com/yeremiapane/restaurant-order-platform/utils"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

// CreateReservation -> pesan meja untuk satu window waktu.
// Cek konflik dan insert berjalan dalam satu transaksi supaya dua request
// bersamaan tidak sama-sama lolos (check-then-act race).
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var body struct {
		TableID         uint      `json:"table_id" binding:"required"`
		CustomerName    string    `json:"customer_name" binding:"required"`
		CustomerPhone   string    `json:"customer_phone"`
		CustomerEmail   string    `json:"customer_email" binding:"omitempty,email"`
		PartySize       int       `json:"party_size" binding:"required,gt=0"`
		ReservationDate time.Time `json:"reservation_date" binding:"required"`
		Duration        *int      `json:"duration"`
		Notes           string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	duration := models.DefaultReservationMinutes
	if body.Duration != nil {
		if *body.Duration <= 0 {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("duration must be positive"))
			return
		}
		duration = *body.Duration
	}

	var table models.Table
	if err := rc.DB.Where("id = ? AND is_active = ?", body.TableID, true).
		First(&table).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("table not found"))
		return
	}

	if body.PartySize > table.Capacity {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("party size %d exceeds table capacity %d", body.PartySize, table.Capacity))
		return
	}

	reservation := models.TableReservation{
		TableID:         table.ID,
		CustomerName:    body.CustomerName,
		CustomerPhone:   body.CustomerPhone,
		CustomerEmail:   body.CustomerEmail,
		PartySize:       body.PartySize,
		ReservationDate: body.ReservationDate,
		DurationMinutes: duration,
		Status:          models.ReservationConfirmed,
		Notes:           body.Notes,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	end := body.ReservationDate.Add(time.Duration(duration) * time.Minute)

	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		// Kandidat konflik: reservasi CONFIRMED yang mulai sebelum window
		// berakhir. Overlap interval sejati dicek di Go memakai durasi
		// masing-masing reservasi.
		var existing []models.TableReservation
		if err := tx.
			Where("table_id = ? AND status = ?", table.ID, models.ReservationConfirmed).
			Where("reservation_date < ?", end).
			Find(&existing).Error; err != nil {
			return err
		}
		for i := range existing {
			if existing[i].Overlaps(body.ReservationDate, duration) {
				return ErrReservationConflict
			}
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		if err == ErrReservationConflict {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	reservation.Table = table

	utils.InfoLogger.Printf("Reservation created for table %s (%s, party of %d)",
		table.TableNumber, reservation.ReservationDate.Format(time.RFC3339), reservation.PartySize)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// GetTableReservations -> daftar reservasi CONFIRMED untuk satu meja
func (rc *ReservationController) GetTableReservations(c *gin.Context) {
	tableID, err := strconv.Atoi(c.Param("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid table id"))
		return
	}

	var reservations []models.TableReservation
	if err := rc.DB.
		Where("table_id = ? AND status = ?", tableID, models.ReservationConfirmed).
		Order("reservation_date asc").
		Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservations for table", reservations)
}

// CancelReservation -> reservasi dibatalkan, tidak pernah dihapus fisik
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	reservationID := c.Param("reservation_id")

	var reservation models.TableReservation
	if err := rc.DB.First(&reservation, reservationID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if reservation.Status == models.ReservationCancelled {
		utils.RespondJSON(c, http.StatusOK, "Reservation already cancelled", reservation)
		return
	}

	reservation.Status = models.ReservationCancelled
	reservation.UpdatedAt = time.Now()
	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", reservation)
}
