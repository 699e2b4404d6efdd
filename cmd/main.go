package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"

	"mit-tracker/mittrack/config"
	"mit-tracker/mittrack/database"
	"mit-tracker/mittrack/middleware"
	"mit-tracker/mittrack/routes"
	"mit-tracker/mittrack/services"
	"mit-tracker/mittrack/tools"
)

const (
	serverName    = "mittrack"
	serverVersion = "0.1.0"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	taskService := services.NewTaskService(cfg.MaxTasksPerDay)
	services.TaskServiceInstance = taskService

	mcpServer := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
	)
	tools.RegisterTaskTools(mcpServer, db, taskService)

	// Optional REST surface next to the stdio transport.
	if cfg.HTTPAPIEnabled {
		if cfg.AppEnv != "development" {
			gin.SetMode(gin.ReleaseMode)
		}
		router := gin.Default()
		router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

		apiGroup := router.Group("/api/v1")
		routes.RegisterTaskRoutes(apiGroup, db, taskService)

		go func() {
			log.Printf("HTTP API listening on port %s", cfg.AppPort)
			if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
				log.Fatalf("Failed to start HTTP API: %v", err)
			}
		}()
	}

	// Stdout carries the protocol; all logging stays on stderr.
	log.Printf("%s %s serving on stdio", serverName, serverVersion)
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
