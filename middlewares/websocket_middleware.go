package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-order-platform/utils"
)

// WebSocketAuthMiddleware -> auth via query param karena browser tidak bisa
// mengirim header Authorization saat handshake websocket.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(401)
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(401)
			return
		}

		c.Set("role", claims.Role)
		c.Set("user_id", claims.UserID)
		if claims.RestaurantID != nil {
			c.Set("restaurant_id", *claims.RestaurantID)
		}

		c.Next()
	}
}
