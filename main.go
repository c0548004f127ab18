package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartpark-backend/config"
	"smartpark-backend/controllers"
	"smartpark-backend/models"
	"smartpark-backend/routes"
	"smartpark-backend/services"
	"smartpark-backend/sessions"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Car{},
		&models.Package{},
		&models.ServiceRecord{},
		&models.Payment{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	store := setupSessionStore()
	sweeper := services.StartSessionSweeper(store)
	defer sweeper.Stop()

	controllers.Notifier = services.NewReceiptNotifier(config.DB)
	if controllers.Notifier == nil {
		log.Println("Twilio not configured, receipt SMS disabled")
	}

	r := routes.SetupRouter(store)
	printRoutes(r)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()
	log.Printf("Server running on port %s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown failed: %v", err)
	}
}

func setupSessionStore() sessions.Store {
	if os.Getenv("SESSION_BACKEND") != "redis" {
		return sessions.NewMemoryStore()
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("error creating redis client %s", err)
	}
	log.Printf("Sessions stored in redis at %s", addr)
	return sessions.NewRedisStore(client)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
