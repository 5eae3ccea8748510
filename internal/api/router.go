package api

import (
	"net/http"

	"fleet-dispatch-service/internal/api/handlers"
	"fleet-dispatch-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	vehicles ports.VehicleRepository,
	orders ports.OrderRepository,
	provider ports.DirectionsProvider,
) http.Handler {
	mux := http.NewServeMux()

	vehicleHandler := &handlers.VehicleHandler{Repo: vehicles}
	orderHandler := &handlers.OrderHandler{Repo: orders}
	routeHandler := &handlers.RouteHandler{
		Vehicles: vehicles,
		Orders:   orders,
		Provider: provider,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/vehicles", vehicleHandler.List)
	mux.HandleFunc("/vehicles/{id}", vehicleHandler.Get)
	mux.HandleFunc("/vehicles/{id}/location", vehicleHandler.UpdateLocation)
	mux.HandleFunc("/orders", orderHandler.List)
	mux.HandleFunc("/orders/{id}", orderHandler.Get)
	mux.HandleFunc("/orders/{id}/status", orderHandler.UpdateStatus)
	mux.HandleFunc("/routes/vehicle/{id}", routeHandler.Vehicle)
	mux.HandleFunc("/routes/fleet", routeHandler.Fleet)
	mux.HandleFunc("/routes/area", routeHandler.Area)

	return loggingMiddleware(mux)
}
