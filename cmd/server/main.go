package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/modi-meet/task-glitch-Erino/internal/config"
	"github.com/modi-meet/task-glitch-Erino/internal/database"
	"github.com/modi-meet/task-glitch-Erino/internal/handlers"
	"github.com/modi-meet/task-glitch-Erino/internal/middleware"
	"github.com/modi-meet/task-glitch-Erino/internal/repository"
	"github.com/modi-meet/task-glitch-Erino/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Build the store and load the collection once for this server lifetime
	taskStore := store.New(repository.NewTaskRepository(db))
	if err := taskStore.Load(context.Background()); err != nil {
		log.Fatalf("Failed to load tasks: %v", err)
	}
	defer taskStore.Close()

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigin))

	// Initialize handlers
	taskHandler := handlers.NewTaskHandler(taskStore)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Glitch API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/summary", taskHandler.GetSummary)
			tasks.POST("/restore", taskHandler.RestoreTask)
			tasks.POST("/undo/dismiss", taskHandler.DismissUndo)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}

	// Start server
	log.Println("Server starting on :" + cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
