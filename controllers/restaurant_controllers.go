package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-platform/models"
	"github.com/yeremiapane/restaurant-order-platform/utils"
)

type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

// GetAllRestaurants -> daftar restoran aktif
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := rc.DB.Where("is_active = ?", true).Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

// GetRestaurantByID -> profil satu restoran
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")
	var restaurant models.Restaurant
	if err := rc.DB.Where("is_active = ?", true).First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}

// CreateRestaurant -> daftarkan restoran baru (admin)
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var body struct {
		Name         string  `json:"name" binding:"required"`
		Description  string  `json:"description"`
		Address      string  `json:"address"`
		Phone        string  `json:"phone"`
		Email        string  `json:"email" binding:"omitempty,email"`
		DeliveryTime int     `json:"delivery_time"`
		MinOrder     float64 `json:"min_order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant := models.Restaurant{
		Name:          body.Name,
		Description:   body.Description,
		Address:       body.Address,
		Phone:         body.Phone,
		Email:         body.Email,
		IsActive:      true,
		AcceptsOrders: true,
		DeliveryTime:  30,
		MinOrder:      body.MinOrder,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if body.DeliveryTime > 0 {
		restaurant.DeliveryTime = body.DeliveryTime
	}

	if err := rc.DB.Create(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Restaurant created: %s", restaurant.Name)
	utils.RespondJSON(c, http.StatusCreated, "Restaurant created", restaurant)
}

// UpdateRestaurant -> ubah profil, flag accepts_orders, estimasi, minimum
func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	var body struct {
		Name          *string  `json:"name"`
		Description   *string  `json:"description"`
		Address       *string  `json:"address"`
		Phone         *string  `json:"phone"`
		Email         *string  `json:"email"`
		IsActive      *bool    `json:"is_active"`
		AcceptsOrders *bool    `json:"accepts_orders"`
		DeliveryTime  *int     `json:"delivery_time"`
		MinOrder      *float64 `json:"min_order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != nil {
		restaurant.Name = *body.Name
	}
	if body.Description != nil {
		restaurant.Description = *body.Description
	}
	if body.Address != nil {
		restaurant.Address = *body.Address
	}
	if body.Phone != nil {
		restaurant.Phone = *body.Phone
	}
	if body.Email != nil {
		restaurant.Email = *body.Email
	}
	if body.IsActive != nil {
		restaurant.IsActive = *body.IsActive
	}
	if body.AcceptsOrders != nil {
		restaurant.AcceptsOrders = *body.AcceptsOrders
	}
	if body.DeliveryTime != nil && *body.DeliveryTime > 0 {
		restaurant.DeliveryTime = *body.DeliveryTime
	}
	if body.MinOrder != nil && *body.MinOrder >= 0 {
		restaurant.MinOrder = *body.MinOrder
	}
	restaurant.UpdatedAt = time.Now()

	if err := rc.DB.Save(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant updated", restaurant)
}

// RateRestaurant -> tambahkan satu rating ke agregat
func (rc *RestaurantController) RateRestaurant(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	var body struct {
		Rating float64 `json:"rating" binding:"required,gte=1,lte=5"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var restaurant models.Restaurant
	if err := rc.DB.Where("is_active = ?", true).First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	// Rata-rata berjalan di kolom agregat
	total := restaurant.Rating*float64(restaurant.RatingCount) + body.Rating
	restaurant.RatingCount++
	restaurant.Rating = total / float64(restaurant.RatingCount)
	restaurant.UpdatedAt = time.Now()

	if err := rc.DB.Save(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Rating recorded", restaurant)
}
