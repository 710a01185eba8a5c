package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/yeremiapane/restaurant-order-platform/realtime"
	"github.com/yeremiapane/restaurant-order-platform/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS ditangani di middleware
	},
}

type WSController struct {
	Hub *realtime.Hub
}

func NewWSController(hub *realtime.Hub) *WSController {
	return &WSController{Hub: hub}
}

// StaffSocket -> websocket untuk staff/admin. Room restoran diambil dari
// claim token di server, bukan dari id kiriman client.
func (wc *WSController) StaffSocket(c *gin.Context) {
	roleInterface, exists := c.Get("role")
	if !exists {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	role := roleInterface.(string)
	if role != "staff" && role != "admin" {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	restaurantIDInterface, exists := c.Get("restaurant_id")
	if !exists {
		utils.RespondError(c, http.StatusForbidden, errors.New("token is not bound to a restaurant"))
		return
	}
	restaurantID := restaurantIDInterface.(uint)

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	room := realtime.RestaurantRoom(restaurantID)
	wc.Hub.Join(room, ws)
	utils.InfoLogger.Printf("Staff socket joined %s", room)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	wc.Hub.Leave(room, ws)
}

// CustomerSocket -> websocket untuk customer memantau ordernya.
// Tracking token dari response create order menentukan room-nya.
func (wc *WSController) CustomerSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	claims, err := utils.ParseTrackingToken(token)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	room := realtime.CustomerRoom(claims.CustomerKey)
	wc.Hub.Join(room, ws)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	wc.Hub.Leave(room, ws)
}
