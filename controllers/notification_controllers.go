package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-platform/models"
	"github.com/yeremiapane/restaurant-order-platform/utils"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GetNotifications -> feed notifikasi staff, terbaru lebih dulu
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	query := nc.DB.Model(&models.Notification{})
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}

	var notifs []models.Notification
	if err := query.Order("created_at desc").Limit(100).Find(&notifs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All notifications", notifs)
}

// recordNotification menyimpan jejak event order untuk feed staff.
// Gagal menulis hanya dicatat di log; emit websocket tidak bergantung padanya.
func recordNotification(db *gorm.DB, restaurantID uint, orderID *uint, event, message string) {
	notif := models.Notification{
		RestaurantID: restaurantID,
		OrderID:      orderID,
		Event:        event,
		Message:      message,
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&notif).Error; err != nil {
		utils.ErrorLogger.Printf("Error recording notification: %v", err)
	}
}
