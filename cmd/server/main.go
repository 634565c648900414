package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"assistant-relay/internal/config"
	"assistant-relay/internal/handlers"
	"assistant-relay/internal/router"
	"assistant-relay/internal/services"
)

func main() {
	log.Println("🚀 Starting Assistant Relay...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	var assistantHandler *handlers.AssistantHandler
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("✗ Gemini client unavailable, replies will use the fallback: %v", err)
		assistantHandler = handlers.NewAssistantHandler(services.UnavailableGenerator{Err: err})
	} else {
		defer geminiService.Close()
		assistantHandler = handlers.NewAssistantHandler(geminiService)
		log.Printf("✓ Gemini client initialized (%s)", cfg.GeminiModel)
	}

	// ──── Step 3: Initialize Frontend ────
	spaHandler := handlers.NewSPAHandler(os.DirFS(cfg.StaticDir))
	log.Printf("✓ Serving frontend from %s", cfg.StaticDir)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(assistantHandler, spaHandler, cfg.AllowedOrigin)

	// No WriteTimeout: the Gemini call runs without a deadline.
	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		log.Fatalf("✗ Listen on %s failed: %v", server.Addr, err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("✓ Assistant Relay ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/assistant", cfg.Port)

	if err := serve(server, ln, sigChan, 30*time.Second); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("✓ Server stopped")
}

// serve runs server on ln until stop fires, then drains in-flight requests
// for up to drain before returning.
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal, drain time.Duration) error {
	done := make(chan struct{})
	go func() {
		<-stop
		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), drain)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
		close(done)
	}()

	if err := server.Serve(ln); err != http.ErrServerClosed {
		return err
	}
	<-done
	return nil
}
