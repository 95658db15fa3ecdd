package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"schoolpulse/internal/ask"
	"schoolpulse/internal/store"
)

// ServerConfig holds configuration for the web server
type ServerConfig struct {
	Port     int
	Pipeline *ask.Pipeline
	Store    *store.Store
}

// StartServer initializes and starts the HTTP server
func StartServer(config ServerConfig) error {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	// API handlers (JSON responses)
	apiHandler := &APIHandler{Pipeline: config.Pipeline, Store: config.Store}
	r.Route("/api", func(r chi.Router) {
		r.Post("/questions/sql", apiHandler.GenerateSQL)
		r.Post("/questions/explain", apiHandler.ExplainResults)
		r.Post("/questions/answer", apiHandler.Answer)
	})

	addr := fmt.Sprintf(":%d", config.Port)
	if logger != nil {
		logger.Info("Starting server", "addr", addr)
	}
	return http.ListenAndServe(addr, r)
}
