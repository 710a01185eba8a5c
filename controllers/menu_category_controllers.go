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

type MenuCategoryController struct {
	DB *gorm.DB
}

func NewMenuCategoryController(db *gorm.DB) *MenuCategoryController {
	return &MenuCategoryController{DB: db}
}

// GetCategoriesByRestaurant
func (mcc *MenuCategoryController) GetCategoriesByRestaurant(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	var categories []models.MenuCategory
	if err := mcc.DB.
		Where("restaurant_id = ?", restaurantID).
		Order("display_order asc").
		Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All menu categories", categories)
}

// CreateCategory
func (mcc *MenuCategoryController) CreateCategory(c *gin.Context) {
	var body struct {
		RestaurantID uint   `json:"restaurant_id" binding:"required"`
		Name         string `json:"name" binding:"required"`
		DisplayOrder int    `json:"display_order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category := models.MenuCategory{
		RestaurantID: body.RestaurantID,
		Name:         body.Name,
		DisplayOrder: body.DisplayOrder,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := mcc.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

// UpdateCategory
func (mcc *MenuCategoryController) UpdateCategory(c *gin.Context) {
	idStr := c.Param("cat_id")
	id, _ := strconv.Atoi(idStr)

	var body struct {
		Name         string `json:"name"`
		DisplayOrder *int   `json:"display_order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.MenuCategory
	if err := mcc.DB.First(&category, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != "" {
		category.Name = body.Name
	}
	if body.DisplayOrder != nil {
		category.DisplayOrder = *body.DisplayOrder
	}
	category.UpdatedAt = time.Now()

	if err := mcc.DB.Save(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category updated", category)
}

// DeleteCategory
func (mcc *MenuCategoryController) DeleteCategory(c *gin.Context) {
	idStr := c.Param("cat_id")
	id, _ := strconv.Atoi(idStr)

	if err := mcc.DB.Delete(&models.MenuCategory{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"cat_id": id})
}
