package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-platform/models"
	"github.com/yeremiapane/restaurant-order-platform/realtime"
	"github.com/yeremiapane/restaurant-order-platform/router"
	"github.com/yeremiapane/restaurant-order-platform/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndOrderFlow menguji alur utama:
// 1. Register admin + login -> token
// 2. Setup restoran, kategori, menu, meja
// 3. Customer membuat order (public)
// 4. Staff memajukan status sampai COMPLETED
// 5. Cek list order + feed notifikasi
func TestEndToEndOrderFlow(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	autoMigrate(db)

	hub := realtime.NewHub()
	r := router.SetupRouter(db, hub)

	// 1. Register + login
	w := request(t, r, "POST", "/api/v1/register", "", map[string]interface{}{
		"name":     "Admin",
		"email":    "admin@example.com",
		"password": "supersecret1",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = request(t, r, "POST", "/api/v1/login", "", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "supersecret1",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	token := decode(t, w)["data"].(map[string]interface{})["token"].(string)
	assert.NotEmpty(t, token)

	// 2. Restoran + katalog + meja
	w = request(t, r, "POST", "/api/v1/restaurants", token, map[string]interface{}{
		"name":          "Warung Integrasi",
		"delivery_time": 20,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	restaurantID := uint(decode(t, w)["data"].(map[string]interface{})["id"].(float64))

	w = request(t, r, "POST", "/api/v1/categories", token, map[string]interface{}{
		"restaurant_id": restaurantID,
		"name":          "Mains",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	categoryID := uint(decode(t, w)["data"].(map[string]interface{})["id"].(float64))

	w = request(t, r, "POST", "/api/v1/menus", token, map[string]interface{}{
		"restaurant_id": restaurantID,
		"category_id":   categoryID,
		"name":          "Nasi Goreng",
		"price":         12500,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	menuID := uint(decode(t, w)["data"].(map[string]interface{})["id"].(float64))

	w = request(t, r, "POST", "/api/v1/tables", token, map[string]interface{}{
		"restaurant_id": restaurantID,
		"table_number":  "T1",
		"capacity":      4,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	tableID := uint(decode(t, w)["data"].(map[string]interface{})["id"].(float64))

	// 3. Customer membuat order tanpa login
	w = request(t, r, "POST", "/api/v1/orders", "", map[string]interface{}{
		"restaurant_id": restaurantID,
		"table_id":      tableID,
		"items": []map[string]interface{}{
			{"menu_id": menuID, "quantity": 2, "price": 12500},
		},
		"customer_name":  "Ana",
		"payment_method": "cash",
		"total":          25000,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	orderData := decode(t, w)["data"].(map[string]interface{})
	order := orderData["order"].(map[string]interface{})
	orderID := uint(order["id"].(float64))
	assert.Equal(t, models.OrderPending, order["status"])
	assert.Equal(t, float64(25000), order["total"])
	assert.NotEmpty(t, orderData["tracking_token"])

	// Meja ikut terisi
	var table models.Table
	db.First(&table, tableID)
	assert.Equal(t, models.TableOccupied, table.Status)

	// 4. Status maju sampai COMPLETED
	for _, status := range []string{
		models.OrderConfirmed, models.OrderPreparing, models.OrderReady,
		models.OrderDelivered, models.OrderCompleted,
	} {
		w = request(t, r, "PUT", fmt.Sprintf("/api/v1/orders/%d/status", orderID), token,
			map[string]interface{}{"status": status})
		assert.Equal(t, http.StatusOK, w.Code, "transition to %s", status)
	}

	var final models.Order
	db.First(&final, orderID)
	assert.Equal(t, models.OrderCompleted, final.Status)
	assert.NotNil(t, final.CompletedAt)

	// Tanpa token, update status ditolak
	w = request(t, r, "PUT", fmt.Sprintf("/api/v1/orders/%d/status", orderID), "",
		map[string]interface{}{"status": models.OrderCancelled})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 5. List order + feed notifikasi
	w = request(t, r, "GET",
		fmt.Sprintf("/api/v1/orders?restaurant_id=%d&page=1&limit=10", restaurantID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	listData := decode(t, w)["data"].(map[string]interface{})
	assert.Len(t, listData["items"].([]interface{}), 1)

	w = request(t, r, "GET",
		fmt.Sprintf("/api/v1/notifications?restaurant_id=%d", restaurantID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	notifs := decode(t, w)["data"].([]interface{})
	// 1x new_order + 5x status update
	assert.Len(t, notifs, 6)
}

func request(t *testing.T, r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return resp
}
