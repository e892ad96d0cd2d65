package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"eventdeck/eventdeck/config"
	"eventdeck/eventdeck/database"
	"eventdeck/eventdeck/middleware"
	"eventdeck/eventdeck/routes"
	"eventdeck/eventdeck/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if cfg.SeedDB {
		if err := database.Seed(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	authService := services.NewAuthService(cfg)
	services.AuthServiceInstance = authService

	accessService := services.NewAccessService()
	services.AccessServiceInstance = accessService

	eventService := services.NewEventService(accessService)
	services.EventServiceInstance = eventService

	taskService := services.NewTaskService(accessService)
	services.TaskServiceInstance = taskService

	taskUpdateService := services.NewTaskUpdateService(accessService)
	services.TaskUpdateServiceInstance = taskUpdateService

	router := gin.Default()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	routes.RegisterAuthRoutes(router.Group(""), db, authService)

	// Everything outside /auth requires a valid bearer token.
	protected := router.Group("", middleware.AuthMiddleware(authService))
	routes.RegisterEventRoutes(protected, db, eventService)
	routes.RegisterTaskRoutes(protected, db, taskService)
	routes.RegisterTaskUpdateRoutes(protected, db, taskUpdateService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		db.Close()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
