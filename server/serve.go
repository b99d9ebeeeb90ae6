package server

import (
	"context"
	"fmt"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mkrenn/courseflow/data"
	serverget "github.com/mkrenn/courseflow/server/get"
)

// Serve exposes the ingested catalog as a read-only JSON api. The weekly
// schedule frontend consumes this; nothing here writes.
func Serve(port int, allowedOrigins []string) {
	r := chi.NewRouter()
	cors := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum age for preflight requests
	})
	r.Use(cors.Handler)
	r.Use(middleware.Logger)

	dbPool, err := data.NewPool(context.Background())
	if err != nil {
		slog.Error("Fatal cannot connect to main db", "err", err)
		return
	}

	r.Route("/catalog", func(r chi.Router) {
		serverget.PopulateGetRoutes(&r, dbPool, *slog.Default())
	})

	slog.Info("Running server on", "port", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), r); err != nil {
		slog.Error("Could not serve", "err", err)
	}
}
