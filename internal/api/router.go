package api

import (
	"moving-quote-service/internal/api/handlers"
	"moving-quote-service/internal/ports"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers only see ports; concrete adapters are chosen in cmd/server.
func NewRouter(items ports.ItemCatalog, maps ports.MapsProvider) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	itemHandler := &handlers.ItemHandler{Catalog: items}
	routeHandler := &handlers.RouteHandler{Geocoder: maps, Distances: maps}
	quoteHandler := &handlers.QuoteHandler{Catalog: items, Geocoder: maps, Distances: maps}

	r.Get("/health", handlers.Health)
	r.Get("/items", itemHandler.List)
	r.Get("/items/{key}", itemHandler.Get)
	r.Post("/routes", routeHandler.Confirm)
	r.Post("/quotes", quoteHandler.Quote)

	return r
}
