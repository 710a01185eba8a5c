package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB membuka koneksi database berdasarkan environment.
// DB_DRIVER=sqlite dipakai untuk development lokal tanpa MySQL.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "sqlite" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "restaurant.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}

	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "3306")
	user := getEnv("DB_USER", "root")
	pass := os.Getenv("DB_PASSWORD")
	name := getEnv("DB_NAME", "restaurant_orders")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, name)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
