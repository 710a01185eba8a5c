package realtime

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/yeremiapane/restaurant-order-platform/models"
	"github.com/yeremiapane/restaurant-order-platform/utils"
)

// Event types
const (
	EventNewOrder          = "new_order"
	EventOrderStatusUpdate = "order_status_update"
	EventOrderReady        = "order_ready"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung koneksi websocket per room. Room restoran berisi staff,
// room customer berisi pemesan yang memantau satu order.
// Emit bersifat fire-and-forget: client yang terputus tidak menerima ulang.
type Hub struct {
	rooms map[string]map[*websocket.Conn]bool
	mutex sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]bool),
	}
}

// RestaurantRoom -> nama room untuk staff restoran
func RestaurantRoom(restaurantID uint) string {
	return fmt.Sprintf("restaurant:%d", restaurantID)
}

// CustomerRoom -> nama room untuk customer, dikunci dengan customer key
func CustomerRoom(customerKey string) string {
	return "customer:" + customerKey
}

// Join -> mendaftarkan connection ke sebuah room
func (h *Hub) Join(room string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*websocket.Conn]bool)
	}
	h.rooms[room][conn] = true
}

// Leave -> melepaskan connection dari room dan menutupnya
func (h *Hub) Leave(room string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if conns, ok := h.rooms[room]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.rooms, room)
		}
	}
	conn.Close()
}

// RoomSize -> jumlah koneksi di satu room
func (h *Hub) RoomSize(room string) int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.rooms[room])
}

// EmitNewOrder -> siarkan order baru ke room restoran
func (h *Hub) EmitNewOrder(order models.Order) {
	h.emit(RestaurantRoom(order.RestaurantID), Message{
		Event: EventNewOrder,
		Data:  order,
	})
}

// EmitStatusUpdate -> siarkan perubahan status ke restoran dan customer.
// Status READY juga memicu event order_ready terpisah agar UI customer bisa
// membedakan "makanan siap" dari perubahan status biasa.
func (h *Hub) EmitStatusUpdate(order models.Order) {
	msg := Message{
		Event: EventOrderStatusUpdate,
		Data:  order,
	}
	h.emit(RestaurantRoom(order.RestaurantID), msg)
	h.emit(CustomerRoom(order.CustomerKey), msg)

	if order.Status == models.OrderReady {
		ready := Message{
			Event: EventOrderReady,
			Data:  order,
		}
		h.emit(RestaurantRoom(order.RestaurantID), ready)
		h.emit(CustomerRoom(order.CustomerKey), ready)
	}
}

// emit -> kirim pesan ke seluruh koneksi di satu room
func (h *Hub) emit(room string, msg Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	conns := h.rooms[room]
	if len(conns) == 0 {
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling %s message: %v", msg.Event, err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending %s to room %s: %v", msg.Event, room, err)
			continue
		}
	}
}
