package main

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/andrewpaige1/edusense-api/config"
	"github.com/andrewpaige1/edusense-api/frontend"
	"github.com/andrewpaige1/edusense-api/handlers"
	"github.com/andrewpaige1/edusense-api/middleware"
	"github.com/andrewpaige1/edusense-api/services"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// newServer wires the routes and the middleware chain. Outermost first:
// CORS, panic recovery, request ID, access log, metrics, mux.
func newServer(env config.Environment, logger *zap.Logger, metrics *middleware.Metrics, generator services.Generator) (http.Handler, error) {
	pages, err := handlers.NewPageHandler(frontend.Files, logger)
	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(frontend.Files, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	flashcards := &handlers.FlashcardHandler{
		Generator:    generator,
		Logger:       logger,
		MaxBodyBytes: env.MaxBodyBytes,
		DecksServed:  metrics.DecksServed,
	}

	mux := http.NewServeMux()

	// Page
	mux.HandleFunc("GET /{$}", pages.ServeIndex)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))

	// Flashcards
	mux.HandleFunc("POST /generate_flashcards", flashcards.GenerateFlashcards)

	// Ops
	mux.HandleFunc("GET /health", handlers.HealthCheck)
	mux.Handle("GET /metrics", metrics.Handler())

	var handler http.Handler = metrics.Instrument(mux)
	handler = middleware.Logger(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = chimiddleware.Recoverer(handler)

	return cors.New(cors.Options{
		AllowedOrigins:   env.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", middleware.RequestIDHeader, "Accept", "Origin"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(handler), nil
}
