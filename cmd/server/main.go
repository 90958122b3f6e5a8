package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/mochizukey/task-rest-api/internal/config"
	"github.com/mochizukey/task-rest-api/internal/database"
	"github.com/mochizukey/task-rest-api/internal/handlers"
	"github.com/mochizukey/task-rest-api/internal/middleware"
	"github.com/mochizukey/task-rest-api/internal/repository"
	"github.com/mochizukey/task-rest-api/internal/services"
	"github.com/mochizukey/task-rest-api/internal/worker"
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

	// Wire service layer
	taskRepo := repository.NewTaskRepository(database.GetDB())
	taskService := services.NewTaskService(taskRepo)

	// Start the deferred-update worker
	queue := worker.NewRedisQueue(cfg.RedisHost+":"+cfg.RedisPort, cfg.QueueKey)
	defer queue.Close()

	w := worker.New(taskService, queue)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go w.Run(ctx)

	// Initialize handlers
	taskHandler := handlers.NewTaskHandler(taskService, w, cfg.UpdateDelay)

	// Initialize Gin router
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task API is running",
		})
	})

	// Task routes
	tasks := r.Group("/tasks")
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("/async-create", taskHandler.AsyncCreateTask)
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
