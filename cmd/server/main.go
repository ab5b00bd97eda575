package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/todotrack/todo-api/internal/auth"
	"github.com/todotrack/todo-api/internal/config"
	"github.com/todotrack/todo-api/internal/database"
	"github.com/todotrack/todo-api/internal/handlers"
	"github.com/todotrack/todo-api/internal/middleware"
	"github.com/todotrack/todo-api/internal/repository"
	"github.com/todotrack/todo-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Auth primitives built from configuration, not ambient globals
	tokens := auth.NewTokenManager(auth.TokenConfig{
		SecretKey: cfg.JWTSecret,
		TTL:       cfg.TokenTTL,
		Issuer:    "todo-api",
	})
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	// Repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	taskRepo := repository.NewTaskRepository(database.GetDB())
	authService := services.NewAuthService(userRepo, hasher, tokens)
	taskService := services.NewTaskService(taskRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Todo Tracker API is running",
		})
	})

	// User routes (public)
	users := r.Group("/users")
	{
		users.POST("", authHandler.Register)
		users.POST("/login", authHandler.Login)
	}

	// Task routes (protected)
	tasks := r.Group("/tasks")
	tasks.Use(middleware.RequireAuth(tokens))
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
