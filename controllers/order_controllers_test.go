package controllers_test

import (
	"fmt"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-order-platform/models"
	"github.com/yeremiapane/restaurant-order-platform/realtime"
)

var orderNumberRe = regexp.MustCompile(`^ORD-\d+-[A-Z0-9]{9}$`)

func orderPayload(restaurantID, menuID uint) map[string]interface{} {
	return map[string]interface{}{
		"restaurant_id": restaurantID,
		"items": []map[string]interface{}{
			{"menu_id": menuID, "quantity": 2, "price": 12500},
		},
		"customer_name":  "Ana",
		"payment_method": "cash",
		"total":          25000,
	}
}

func TestCreateOrder(t *testing.T) {
	db := setupTestDB(t)
	restaurant, menu := seedRestaurant(t, db)
	r := setupOrderRouter(db, realtime.NewHub())

	w := doJSON(t, r, "POST", "/orders", orderPayload(restaurant.ID, menu.ID))
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	order := data["order"].(map[string]interface{})

	assert.Equal(t, models.OrderPending, order["status"])
	assert.Equal(t, float64(25000), order["total"])
	assert.Equal(t, float64(25000), order["subtotal"])
	assert.Regexp(t, orderNumberRe, order["order_number"])
	assert.NotEmpty(t, data["tracking_token"])
	assert.NotEmpty(t, data["estimated_delivery_at"])

	items := order["order_items"].([]interface{})
	assert.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, float64(2), item["quantity"])
	assert.Equal(t, float64(12500), item["price"])

	// Notifikasi new_order tercatat di feed staff
	var notifCount int64
	db.Model(&models.Notification{}).
		Where("restaurant_id = ? AND event = ?", restaurant.ID, realtime.EventNewOrder).
		Count(&notifCount)
	assert.Equal(t, int64(1), notifCount)
}

func TestCreateOrderInactiveRestaurant(t *testing.T) {
	db := setupTestDB(t)
	restaurant, menu := seedRestaurant(t, db)
	db.Model(&models.Restaurant{}).Where("id = ?", restaurant.ID).Update("is_active", false)
	r := setupOrderRouter(db, realtime.NewHub())

	w := doJSON(t, r, "POST", "/orders", orderPayload(restaurant.ID, menu.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateOrderUnknownRestaurant(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db, realtime.NewHub())

	w := doJSON(t, r, "POST", "/orders", orderPayload(999, 1))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateOrderNotAcceptingOrders(t *testing.T) {
	db := setupTestDB(t)
	restaurant, menu := seedRestaurant(t, db)
	db.Model(&models.Restaurant{}).Where("id = ?", restaurant.ID).Update("accepts_orders", false)
	r := setupOrderRouter(db, realtime.NewHub())

	w := doJSON(t, r, "POST", "/orders", orderPayload(restaurant.ID, menu.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderBelowMinimum(t *testing.T) {
	db := setupTestDB(t)
	restaurant, menu := seedRestaurant(t, db)
	db.Model(&models.Restaurant{}).Where("id = ?", restaurant.ID).Update("min_order", 50000)
	r := setupOrderRouter(db, realtime.NewHub())

	w := doJSON(t, r, "POST", "/orders", orderPayload(restaurant.ID, menu.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderMarksTableOccupied(t *testing.T) {
	db := setupTestDB(t)
	restaurant, menu := seedRestaurant(t, db)
	table := seedTable(t, db, restaurant.ID, "T1", 4)
	r := setupOrderRouter(db, realtime.NewHub())

	payload := orderPayload(restaurant.ID, menu.ID)
	payload["table_id"] = table.ID
	w := doJSON(t, r, "POST", "/orders", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var updated models.Table
	db.First(&updated, table.ID)
	assert.Equal(t, models.TableOccupied, updated.Status)
	assert.NotNil(t, updated.LastOccupiedAt)
}

func TestUpdateOrderStatusHappyPath(t *testing.T) {
	db := setupTestDB(t)
	restaurant, menu := seedRestaurant(t, db)
	r := setupOrderRouter(db, realtime.NewHub())

	w := doJSON(t, r, "POST", "/orders", orderPayload(restaurant.ID, menu.ID))
	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	order := resp["data"].(map[string]interface{})["order"].(map[string]interface{})
	orderID := uint(order["id"].(float64))

	// Maju mengikuti transition table sampai COMPLETED
	for _, status := range []string{
		models.OrderConfirmed, models.OrderPreparing, models.OrderReady, models.OrderCompleted,
	} {
		w = doJSON(t, r, "PUT", fmt.Sprintf("/orders/%d/status", orderID),
			map[string]interface{}{"status": status})
		assert.Equal(t, http.StatusOK, w.Code, "transition to %s", status)
	}

	var updated models.Order
	db.First(&updated, orderID)
	assert.Equal(t, models.OrderCompleted, updated.Status)
	assert.NotNil(t, updated.CompletedAt)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
}

func TestUpdateOrderStatusRejectsIllegalTransition(t *testing.T) {
	db := setupTestDB(t)
	restaurant, menu := seedRestaurant(t, db)
	r := setupOrderRouter(db, realtime.NewHub())

	w := doJSON(t, r, "POST", "/orders", orderPayload(restaurant.ID, menu.ID))
	resp := decodeResponse(t, w)
	order := resp["data"].(map[string]interface{})["order"].(map[string]interface{})
	orderID := uint(order["id"].(float64))

	// PENDING tidak boleh langsung READY
	w = doJSON(t, r, "PUT", fmt.Sprintf("/orders/%d/status", orderID),
		map[string]interface{}{"status": models.OrderReady})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var unchanged models.Order
	db.First(&unchanged, orderID)
	assert.Equal(t, models.OrderPending, unchanged.Status)
	assert.Nil(t, unchanged.CompletedAt)
}

func TestUpdateOrderStatusUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	restaurant, menu := seedRestaurant(t, db)
	r := setupOrderRouter(db, realtime.NewHub())

	w := doJSON(t, r, "POST", "/orders", orderPayload(restaurant.ID, menu.ID))
	resp := decodeResponse(t, w)
	order := resp["data"].(map[string]interface{})["order"].(map[string]interface{})
	orderID := uint(order["id"].(float64))

	w = doJSON(t, r, "PUT", fmt.Sprintf("/orders/%d/status", orderID),
		map[string]interface{}{"status": "BURNED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatusIdempotentRepeat(t *testing.T) {
	db := setupTestDB(t)
	restaurant, menu := seedRestaurant(t, db)
	r := setupOrderRouter(db, realtime.NewHub())

	w := doJSON(t, r, "POST", "/orders", orderPayload(restaurant.ID, menu.ID))
	resp := decodeResponse(t, w)
	order := resp["data"].(map[string]interface{})["order"].(map[string]interface{})
	orderID := uint(order["id"].(float64))

	url := fmt.Sprintf("/orders/%d/status", orderID)
	w = doJSON(t, r, "PUT", url, map[string]interface{}{"status": models.OrderConfirmed})
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, "PUT", url, map[string]interface{}{"status": models.OrderConfirmed})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Order
	db.First(&updated, orderID)
	assert.Equal(t, models.OrderConfirmed, updated.Status)
}

func TestUpdateOrderStatusPersistsEstimatedTime(t *testing.T) {
	db := setupTestDB(t)
	restaurant, menu := seedRestaurant(t, db)
	r := setupOrderRouter(db, realtime.NewHub())

	w := doJSON(t, r, "POST", "/orders", orderPayload(restaurant.ID, menu.ID))
	resp := decodeResponse(t, w)
	order := resp["data"].(map[string]interface{})["order"].(map[string]interface{})
	orderID := uint(order["id"].(float64))

	w = doJSON(t, r, "PUT", fmt.Sprintf("/orders/%d/status", orderID),
		map[string]interface{}{"status": models.OrderConfirmed, "estimated_time": 45})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Order
	db.First(&updated, orderID)
	if assert.NotNil(t, updated.EstimatedTime) {
		assert.Equal(t, 45, *updated.EstimatedTime)
	}
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db, realtime.NewHub())

	w := doJSON(t, r, "PUT", "/orders/999/status",
		map[string]interface{}{"status": models.OrderConfirmed})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrdersPagination(t *testing.T) {
	db := setupTestDB(t)
	restaurant, menu := seedRestaurant(t, db)
	r := setupOrderRouter(db, realtime.NewHub())

	for i := 0; i < 15; i++ {
		w := doJSON(t, r, "POST", "/orders", orderPayload(restaurant.ID, menu.ID))
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, "GET",
		fmt.Sprintf("/orders?restaurant_id=%d&page=2&limit=10", restaurant.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	assert.Len(t, items, 5)

	pagination := data["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(15), pagination["total"])
	assert.Equal(t, float64(2), pagination["total_pages"])
}

func TestGetOrdersStatusFilter(t *testing.T) {
	db := setupTestDB(t)
	restaurant, menu := seedRestaurant(t, db)
	r := setupOrderRouter(db, realtime.NewHub())

	w := doJSON(t, r, "POST", "/orders", orderPayload(restaurant.ID, menu.ID))
	resp := decodeResponse(t, w)
	order := resp["data"].(map[string]interface{})["order"].(map[string]interface{})
	orderID := uint(order["id"].(float64))
	doJSON(t, r, "POST", "/orders", orderPayload(restaurant.ID, menu.ID))

	doJSON(t, r, "PUT", fmt.Sprintf("/orders/%d/status", orderID),
		map[string]interface{}{"status": models.OrderConfirmed})

	w = doJSON(t, r, "GET",
		fmt.Sprintf("/orders?restaurant_id=%d&status=%s", restaurant.ID, models.OrderConfirmed), nil)
	resp = decodeResponse(t, w)
	items := resp["data"].(map[string]interface{})["items"].([]interface{})
	assert.Len(t, items, 1)
}

func TestOrderNumberFormat(t *testing.T) {
	before := time.Now().UnixMilli()
	number := models.GenerateOrderNumber()
	assert.Regexp(t, orderNumberRe, number)

	var millis int64
	var suffix string
	_, err := fmt.Sscanf(number, "ORD-%d-%s", &millis, &suffix)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, millis, before)
}
