package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-platform/controllers"
	"github.com/yeremiapane/restaurant-order-platform/middlewares"
	"github.com/yeremiapane/restaurant-order-platform/realtime"
)

func SetupRouter(db *gorm.DB, hub *realtime.Hub) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Rate limiter global per IP, dipasang sebelum route didaftarkan
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	categoryCtrl := controllers.NewMenuCategoryController(db)
	menuCtrl := controllers.NewMenuController(db)
	tableCtrl := controllers.NewTableController(db)
	reservationCtrl := controllers.NewReservationController(db)
	orderCtrl := controllers.NewOrderController(db, hub)
	notificationCtrl := controllers.NewNotificationController(db)
	wsCtrl := controllers.NewWSController(hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	v1 := r.Group("/api/v1")

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------

	// Rate limiter untuk login/register
	public := v1.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Customer browse tanpa login
	v1.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	v1.GET("/restaurants/:restaurant_id", restaurantCtrl.GetRestaurantByID)
	v1.GET("/restaurants/:restaurant_id/categories", categoryCtrl.GetCategoriesByRestaurant)
	v1.GET("/restaurants/:restaurant_id/menus", menuCtrl.GetMenusByRestaurant)
	v1.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	v1.POST("/restaurants/:restaurant_id/rating", restaurantCtrl.RateRestaurant)

	// Order dibuat customer tanpa login
	v1.POST("/orders", orderCtrl.CreateOrder)
	v1.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// Reservasi meja
	v1.POST("/tables/reservations", reservationCtrl.CreateReservation)
	v1.GET("/tables/:table_id/reservations", reservationCtrl.GetTableReservations)

	// Websocket customer: tracking token menentukan room
	v1.GET("/ws/customer", wsCtrl.CustomerSocket)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := v1.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)

		// RESTAURANTS (admin)
		auth.POST("/restaurants", middlewares.AdminOnly(), restaurantCtrl.CreateRestaurant)
		auth.PATCH("/restaurants/:restaurant_id", restaurantCtrl.UpdateRestaurant)

		// MENU CATEGORIES
		auth.POST("/categories", categoryCtrl.CreateCategory)
		auth.PATCH("/categories/:cat_id", categoryCtrl.UpdateCategory)
		auth.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

		// MENUS
		auth.POST("/menus", menuCtrl.CreateMenu)
		auth.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
		auth.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

		// TABLES
		auth.GET("/tables", tableCtrl.GetAllTables)
		auth.POST("/tables", tableCtrl.CreateTable)
		auth.GET("/tables/:table_id", tableCtrl.GetTableByID)
		auth.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
		auth.PATCH("/tables/:table_id/status", tableCtrl.UpdateTableStatus)
		auth.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

		// RESERVATIONS (staff)
		auth.POST("/tables/reservations/:reservation_id/cancel", reservationCtrl.CancelReservation)

		// ORDERS (staff/admin)
		auth.GET("/orders", orderCtrl.GetOrders)
		auth.PUT("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

		// NOTIFICATIONS
		auth.GET("/notifications", notificationCtrl.GetNotifications)

		// DASHBOARD
		auth.GET("/dashboard/stats", tableCtrl.GetDashboardStats)
	}

	// Websocket staff dengan middleware token query
	ws := v1.Group("/ws")
	ws.Use(middlewares.WebSocketAuthMiddleware())
	{
		ws.GET("/staff", wsCtrl.StaffSocket)
	}

	return r
}
