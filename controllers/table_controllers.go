package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-platform/models"
	"github.com/yeremiapane/restaurant-order-platform/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// CreateTable -> menambahkan meja baru. Nomor meja unik per restoran.
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		RestaurantID uint    `json:"restaurant_id" binding:"required"`
		TableNumber  string  `json:"table_number" binding:"required"`
		Name         string  `json:"name"`
		Section      string  `json:"section"`
		Capacity     int     `json:"capacity"`
		PosX         float64 `json:"pos_x"`
		PosY         float64 `json:"pos_y"`
		Status       string  `json:"status"` // optional, default "available"
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var dup int64
	tc.DB.Model(&models.Table{}).
		Where("restaurant_id = ? AND table_number = ?", req.RestaurantID, req.TableNumber).
		Count(&dup)
	if dup > 0 {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("table number %s already exists for this restaurant", req.TableNumber))
		return
	}

	table := models.Table{
		RestaurantID: req.RestaurantID,
		TableNumber:  req.TableNumber,
		Name:         req.Name,
		Section:      req.Section,
		Capacity:     4,
		PosX:         req.PosX,
		PosY:         req.PosY,
		Status:       models.TableAvailable,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if req.Capacity > 0 {
		table.Capacity = req.Capacity
	}
	if req.Status != "" {
		if !models.ValidTableStatus(req.Status) {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown table status: %s", req.Status))
			return
		}
		table.Status = req.Status
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %s (status=%s)", table.TableNumber, table.Status)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> daftar meja aktif, bisa difilter restoran dan status
func (tc *TableController) GetAllTables(c *gin.Context) {
	query := tc.DB.Where("is_active = ?", true)
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var tables []models.Table
	if err := query.Order("table_number asc").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> detail satu meja
func (tc *TableController) GetTableByID(c *gin.Context) {
	tableID := c.Param("table_id")
	var table models.Table
	if err := tc.DB.Where("is_active = ?", true).First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable -> ubah atribut meja (nama, section, kapasitas, posisi)
func (tc *TableController) UpdateTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var body struct {
		TableNumber *string  `json:"table_number"`
		Name        *string  `json:"name"`
		Section     *string  `json:"section"`
		Capacity    *int     `json:"capacity"`
		PosX        *float64 `json:"pos_x"`
		PosY        *float64 `json:"pos_y"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.Where("is_active = ?", true).First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.TableNumber != nil && *body.TableNumber != table.TableNumber {
		var dup int64
		tc.DB.Model(&models.Table{}).
			Where("restaurant_id = ? AND table_number = ? AND id != ?",
				table.RestaurantID, *body.TableNumber, table.ID).
			Count(&dup)
		if dup > 0 {
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Errorf("table number %s already exists for this restaurant", *body.TableNumber))
			return
		}
		table.TableNumber = *body.TableNumber
	}
	if body.Name != nil {
		table.Name = *body.Name
	}
	if body.Section != nil {
		table.Section = *body.Section
	}
	if body.Capacity != nil && *body.Capacity > 0 {
		table.Capacity = *body.Capacity
	}
	if body.PosX != nil {
		table.PosX = *body.PosX
	}
	if body.PosY != nil {
		table.PosY = *body.PosY
	}
	table.UpdatedAt = time.Now()

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// UpdateTableStatus -> toggle status meja oleh staff
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	tableID := c.Param("table_id")
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidTableStatus(body.Status) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown table status: %s", body.Status))
		return
	}

	var table models.Table
	if err := tc.DB.Where("is_active = ?", true).First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	table.Status = body.Status
	table.UpdatedAt = time.Now()
	if body.Status == models.TableOccupied {
		now := time.Now()
		table.LastOccupiedAt = &now
	}
	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d status changed to %s", table.ID, table.Status)
	utils.RespondJSON(c, http.StatusOK, "Table status updated", table)
}

// DeleteTable -> soft delete via is_active
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := c.Param("table_id")
	var table models.Table

	if err := tc.DB.Where("is_active = ?", true).First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	table.IsActive = false
	table.UpdatedAt = time.Now()
	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deactivated", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": table.ID})
}

// GetDashboardStats -> ringkasan status meja + order hari ini per status
func (tc *TableController) GetDashboardStats(c *gin.Context) {
	restaurantID := c.Query("restaurant_id")
	if restaurantID == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("restaurant_id is required"))
		return
	}

	tableStats := map[string]int64{}
	for _, status := range []string{
		models.TableAvailable, models.TableOccupied, models.TableReserved,
		models.TableCleaning, models.TableOutOfOrder,
	} {
		var count int64
		tc.DB.Model(&models.Table{}).
			Where("restaurant_id = ? AND is_active = ? AND status = ?", restaurantID, true, status).
			Count(&count)
		tableStats[status] = count
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)
	orderStats := map[string]int64{}
	for _, status := range []string{
		models.OrderPending, models.OrderConfirmed, models.OrderPreparing,
		models.OrderReady, models.OrderDelivered, models.OrderCancelled, models.OrderCompleted,
	} {
		var count int64
		tc.DB.Model(&models.Order{}).
			Where("restaurant_id = ? AND status = ? AND created_at >= ?", restaurantID, status, startOfDay).
			Count(&count)
		orderStats[status] = count
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"tables": tableStats,
		"orders": orderStats,
	})
}
