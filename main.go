package main

import (
	"log"
	"time"

	"go-restaurant-operations/config"
	middleware "go-restaurant-operations/middleware"
	routes "go-restaurant-operations/routes"
	"go-restaurant-operations/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	seed, err := cfg.LoadSeed()
	if err != nil {
		log.Fatalf("Error loading seed data: %v", err)
	}
	ops, err := store.NewOperations(seed)
	if err != nil {
		log.Fatalf("Error seeding stores: %v", err)
	}
	log.Printf("Stores seeded: %d tables, %d menu items", len(seed.Tables), len(seed.MenuItems))

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	// Enable CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// API routes
	routes.MenuRoutes(router, ops)
	routes.TableRoutes(router, ops)
	routes.OrderRoutes(router, ops)
	routes.BillRoutes(router, ops)

	// Run the server
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
