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

	"github.com/redis/go-redis/v9"

	"fashionchat/internal/config"
	"fashionchat/internal/database"
	"fashionchat/internal/handlers"
	"fashionchat/internal/router"
	"fashionchat/internal/services"
)

func main() {
	log.Println("🚀 Starting Fashion Chatbot API...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Redis (optional response cache) ────
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		var err error
		redisClient, err = database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		log.Println("✓ Redis connected")
	} else {
		log.Println("- Redis disabled (no REDIS_URL), responses are not cached")
	}

	// ──── Step 3: Initialize Knowledge Service ────
	knowledgeService := services.NewKnowledgeService(redisClient)
	log.Println("✓ Fashion knowledge base loaded")

	// ──── Step 4: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(knowledgeService)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(chatHandler, cfg.ChatRateLimit, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Fashion Chatbot API ready on http://localhost:%s", cfg.Port)
	log.Printf("  Health: http://localhost:%s/health", cfg.Port)
	log.Printf("  Chat:   POST http://localhost:%s/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
