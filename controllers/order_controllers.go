package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-platform/models"
	"github.com/yeremiapane/restaurant-order-platform/realtime"
	"github.com/yeremiapane/restaurant-order-platform/utils"
)

type OrderController struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

func NewOrderController(db *gorm.DB, hub *realtime.Hub) *OrderController {
	return &OrderController{DB: db, Hub: hub}
}

// CreateOrder -> buat order baru dari cart payload (status=PENDING).
// Total dari client dipakai apa adanya sebagai total dan subtotal.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type ItemReq struct {
		MenuID   uint    `json:"menu_id" binding:"required"`
		Quantity int     `json:"quantity" binding:"required,gt=0"`
		Price    float64 `json:"price" binding:"required,gt=0"`
		Notes    string  `json:"notes"`
	}

	type ReqBody struct {
		RestaurantID  uint      `json:"restaurant_id" binding:"required"`
		Items         []ItemReq `json:"items" binding:"required,min=1,dive"`
		CustomerName  string    `json:"customer_name" binding:"required"`
		CustomerPhone string    `json:"customer_phone"`
		TableID       *uint     `json:"table_id"`
		Notes         string    `json:"notes"`
		PaymentMethod string    `json:"payment_method" binding:"required,oneof=card cash"`
		Total         float64   `json:"total" binding:"required,gt=0"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Restoran harus ada dan aktif
	var restaurant models.Restaurant
	if err := oc.DB.Where("id = ? AND is_active = ?", body.RestaurantID, true).
		First(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrRestaurantNotFound)
		return
	}
	if !restaurant.AcceptsOrders {
		utils.RespondError(c, http.StatusBadRequest, ErrRestaurantClosed)
		return
	}
	if restaurant.MinOrder > 0 && body.Total < restaurant.MinOrder {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("order total below restaurant minimum of %s", utils.FormatCurrency(restaurant.MinOrder)))
		return
	}

	order := models.Order{
		OrderNumber:   models.GenerateOrderNumber(),
		RestaurantID:  restaurant.ID,
		TableID:       body.TableID,
		Status:        models.OrderPending,
		Total:         body.Total,
		Subtotal:      body.Total,
		CustomerName:  body.CustomerName,
		CustomerPhone: body.CustomerPhone,
		CustomerKey:   uuid.NewString(),
		PaymentMethod: body.PaymentMethod,
		Notes:         body.Notes,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	// Order dan item ditulis dalam satu transaksi
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, item := range body.Items {
			orderItem := models.OrderItem{
				OrderID:   order.ID,
				MenuID:    item.MenuID,
				Quantity:  item.Quantity,
				Price:     item.Price,
				Notes:     item.Notes,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}

		// Order dengan meja menandai meja terisi
		if body.TableID != nil {
			now := time.Now()
			if err := tx.Model(&models.Table{}).
				Where("id = ? AND is_active = ?", *body.TableID, true).
				Updates(map[string]interface{}{
					"status":           models.TableOccupied,
					"last_occupied_at": &now,
					"updated_at":       now,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hydrated, err := oc.loadOrder(order.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Estimasi pengiriman hanya untuk response, tidak dipersist saat create
	deliveryMinutes := restaurant.DeliveryTime
	if deliveryMinutes <= 0 {
		deliveryMinutes = 30
	}
	estimatedAt := time.Now().Add(time.Duration(deliveryMinutes) * time.Minute)

	trackingToken, err := utils.GenerateTrackingToken(hydrated.ID, hydrated.CustomerKey)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	oc.Hub.EmitNewOrder(hydrated)
	recordNotification(oc.DB, restaurant.ID, &hydrated.ID, realtime.EventNewOrder,
		fmt.Sprintf("New order %s from %s (%s)", hydrated.OrderNumber, hydrated.CustomerName,
			utils.FormatCurrency(hydrated.Total)))

	utils.InfoLogger.Printf("Order %s created for restaurant %d (total=%.2f)",
		hydrated.OrderNumber, restaurant.ID, hydrated.Total)

	utils.RespondJSON(c, http.StatusCreated, "Order created", gin.H{
		"order":                 hydrated,
		"tracking_token":        trackingToken,
		"estimated_delivery_at": estimatedAt,
	})
}

// GetOrders -> list order dengan filter dan pagination
func (oc *OrderController) GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := oc.DB.Model(&models.Order{})
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var orders []models.Order
	if err := query.
		Preload("OrderItems").
		Preload("OrderItems.Menu").
		Preload("Table").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", utils.PagedData{
		Items:      orders,
		Pagination: utils.NewPagination(page, limit, total),
	})
}

// GetOrderByID -> detail 1 order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid order id"))
		return
	}

	order, err := oc.loadOrder(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus -> pindahkan status order mengikuti transition table.
// Status yang sama boleh diulang (idempoten); selain itu hanya transisi
// yang terdaftar yang diterima.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	var body struct {
		Status        string `json:"status" binding:"required"`
		EstimatedTime *int   `json:"estimated_time"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidOrderStatus(body.Status) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown order status: %s", body.Status))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !models.CanTransition(order.Status, body.Status) {
		utils.RespondError(c, http.StatusBadRequest,
			&models.ErrInvalidTransition{From: order.Status, To: body.Status})
		return
	}

	order.Status = body.Status
	order.UpdatedAt = time.Now()
	if body.EstimatedTime != nil {
		order.EstimatedTime = body.EstimatedTime
	}
	if body.Status == models.OrderCompleted && order.CompletedAt == nil {
		now := time.Now()
		order.CompletedAt = &now
	}

	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hydrated, err := oc.loadOrder(order.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	oc.Hub.EmitStatusUpdate(hydrated)
	recordNotification(oc.DB, hydrated.RestaurantID, &hydrated.ID, realtime.EventOrderStatusUpdate,
		fmt.Sprintf("Order %s is now %s", hydrated.OrderNumber, hydrated.Status))

	utils.InfoLogger.Printf("Order %s status -> %s", hydrated.OrderNumber, hydrated.Status)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", hydrated)
}

// loadOrder -> order beserta items, menu, restoran, dan meja
func (oc *OrderController) loadOrder(id uint) (models.Order, error) {
	var order models.Order
	err := oc.DB.
		Preload("OrderItems").
		Preload("OrderItems.Menu").
		Preload("Restaurant").
		Preload("Table").
		First(&order, id).Error
	return order, err
}
