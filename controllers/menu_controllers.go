package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-platform/models"
	"github.com/yeremiapane/restaurant-order-platform/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetMenusByRestaurant -> katalog menu satu restoran
func (mc *MenuController) GetMenusByRestaurant(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	query := mc.DB.Preload("Category").Where("restaurant_id = ?", restaurantID)
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if c.Query("available") == "true" {
		query = query.Where("is_available = ?", true)
	}

	var menus []models.Menu
	if err := query.Order("name asc").Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// GetMenuByID -> detail satu item katalog
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	idStr := c.Param("menu_id")
	id, _ := strconv.Atoi(idStr)

	var menu models.Menu
	if err := mc.DB.Preload("Category").First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", menu)
}

// CreateMenu
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var body struct {
		RestaurantID uint    `json:"restaurant_id" binding:"required"`
		CategoryID   uint    `json:"category_id" binding:"required"`
		Name         string  `json:"name" binding:"required"`
		Description  string  `json:"description"`
		Price        float64 `json:"price" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.MenuCategory
	if err := mc.DB.
		Where("id = ? AND restaurant_id = ?", body.CategoryID, body.RestaurantID).
		First(&category).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	menu := models.Menu{
		RestaurantID: body.RestaurantID,
		CategoryID:   body.CategoryID,
		Name:         body.Name,
		Description:  body.Description,
		Price:        body.Price,
		IsAvailable:  true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := mc.DB.Create(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Menu created: %s (restaurant=%d)", menu.Name, menu.RestaurantID)
	utils.RespondJSON(c, http.StatusCreated, "Menu created", menu)
}

// UpdateMenu -> harga di katalog boleh berubah; harga di order lama tidak
// ikut berubah karena OrderItem menyimpan harga saat order dibuat.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	idStr := c.Param("menu_id")
	id, _ := strconv.Atoi(idStr)

	var body struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		CategoryID  *uint    `json:"category_id"`
		IsAvailable *bool    `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != nil {
		menu.Name = *body.Name
	}
	if body.Description != nil {
		menu.Description = *body.Description
	}
	if body.Price != nil && *body.Price > 0 {
		menu.Price = *body.Price
	}
	if body.CategoryID != nil {
		menu.CategoryID = *body.CategoryID
	}
	if body.IsAvailable != nil {
		menu.IsAvailable = *body.IsAvailable
	}
	menu.UpdatedAt = time.Now()

	if err := mc.DB.Save(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu updated", menu)
}

// DeleteMenu
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	idStr := c.Param("menu_id")
	id, _ := strconv.Atoi(idStr)

	if err := mc.DB.Delete(&models.Menu{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{"menu_id": id})
}
