package main

import (
	"log"
	"net/http"
	"os"

	"dinein-api/config"
	"dinein-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if mode := os.Getenv("GIN_MODE"); mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.Println("closing database:", err)
		}
	}()

	restaurant, err := config.SeedRestaurant(db, cfg)
	if err != nil {
		log.Fatal("Failed to seed restaurant:", err)
	}
	if err := config.SeedAdmin(db, cfg, restaurant.ID); err != nil {
		log.Fatal("Failed to seed admin:", err)
	}

	r := gin.Default()

	// CORS for the menu/dashboard frontends
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Dine-in Menu & Ordering API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, db, cfg)

	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
