package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var JWTSecret []byte

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Default secret untuk development, override lewat .env di production
		secret = "OrderPlatformDevSecret"
	}
	JWTSecret = []byte(secret)
}

// StaffClaims dipakai untuk login staff/admin. RestaurantID mengikat user ke
// room websocket restorannya di sisi server.
type StaffClaims struct {
	UserID       uint   `json:"user_id"`
	Role         string `json:"role"`
	RestaurantID *uint  `json:"restaurant_id,omitempty"`
	jwt.RegisteredClaims
}

// TrackingClaims adalah token pelacakan yang dikembalikan saat order dibuat.
// Customer memakainya untuk join room customer tanpa akun.
type TrackingClaims struct {
	OrderID     uint   `json:"order_id"`
	CustomerKey string `json:"customer_key"`
	jwt.RegisteredClaims
}

func GenerateToken(userID uint, role string, restaurantID *uint) (string, error) {
	claims := &StaffClaims{
		UserID:       userID,
		Role:         role,
		RestaurantID: restaurantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "restaurant-order-platform",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}

func ParseToken(tokenString string) (*StaffClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StaffClaims{}, func(token *jwt.Token) (interface{}, error) {
		return JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*StaffClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// GenerateTrackingToken -> token customer untuk satu order
func GenerateTrackingToken(orderID uint, customerKey string) (string, error) {
	claims := &TrackingClaims{
		OrderID:     orderID,
		CustomerKey: customerKey,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "restaurant-order-platform",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}

func ParseTrackingToken(tokenString string) (*TrackingClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TrackingClaims{}, func(token *jwt.Token) (interface{}, error) {
		return JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired tracking token")
	}

	claims, ok := token.Claims.(*TrackingClaims)
	if !ok {
		return nil, errors.New("invalid tracking token claims")
	}
	if claims.CustomerKey == "" {
		return nil, errors.New("tracking token missing customer key")
	}
	return claims, nil
}
