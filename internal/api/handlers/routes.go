package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"fleet-dispatch-service/internal/adapters/repositories"
	"fleet-dispatch-service/internal/api/dto"
	"fleet-dispatch-service/internal/ports"
	"fleet-dispatch-service/internal/services"
)

// RouteHandler orchestrates route optimization and waypoint enrichment.
// Handlers stay unaware of concrete adapters: repositories and the
// directions provider arrive through ports.
type RouteHandler struct {
	Vehicles ports.VehicleRepository
	Orders   ports.OrderRepository
	Provider ports.DirectionsProvider
}

func vehicleRouteToResponse(vr *services.VehicleRoute) dto.VehicleRouteResponse {
	res := dto.VehicleRouteResponse{
		Vehicle:   vehicleToResponse(vr.Vehicle),
		Waypoints: make([]dto.WaypointResponse, 0, len(vr.Waypoints)),
	}
	for _, wp := range vr.Waypoints {
		wr := dto.WaypointResponse{
			Kind:             wp.Kind,
			Lat:              wp.Location.Lat,
			Lon:              wp.Location.Lon,
			OrderID:          wp.OrderID,
			Step:             wp.Step,
			DistanceKm:       wp.DistanceKm,
			EstimatedMinutes: wp.EstimatedMinutes,
			Instruction:      wp.Instruction,
		}
		for _, s := range wp.DirectionSteps {
			wr.DirectionSteps = append(wr.DirectionSteps, dto.DirectionStepResponse{
				DistanceMeters:  s.DistanceMeters,
				DurationSeconds: s.DurationSeconds,
				Instruction:     s.Instruction,
				Name:            s.Name,
				Maneuver:        s.Maneuver,
			})
		}
		res.Waypoints = append(res.Waypoints, wr)
	}
	return res
}

// Vehicle computes the enriched route for a single vehicle over all pending
// orders.
func (h *RouteHandler) Vehicle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	route, err := services.OptimizeVehicleRoute(r.Context(), id, h.Vehicles, h.Orders, h.Provider)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "vehicle not found")
		return
	}
	if err != nil {
		log.Printf("optimize vehicle route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, vehicleRouteToResponse(route))
}

// Fleet computes enriched routes for every available vehicle.
func (h *RouteHandler) Fleet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	routes, err := services.OptimizeFleetRoutes(r.Context(), h.Vehicles, h.Orders, h.Provider)
	if err != nil {
		log.Printf("optimize fleet routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, fleetToResponse(routes))
}

// Area computes enriched routes restricted to orders picked up inside a
// bounding box.
func (h *RouteHandler) Area(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	area, err := parseArea(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	routes, err := services.OptimizeAreaRoutes(r.Context(), area, h.Vehicles, h.Orders, h.Provider)
	if errors.Is(err, services.ErrNoOrdersInArea) {
		writeError(w, r, http.StatusNotFound, "no pending orders in the requested area")
		return
	}
	if errors.Is(err, services.ErrInvalidArea) {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Printf("optimize area routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, fleetToResponse(routes))
}

func fleetToResponse(routes map[int]*services.VehicleRoute) dto.FleetRoutesResponse {
	res := dto.FleetRoutesResponse{
		Routes: make(map[int]dto.VehicleRouteResponse, len(routes)),
	}
	for id, vr := range routes {
		res.Routes[id] = vehicleRouteToResponse(vr)
	}
	return res
}

func parseArea(r *http.Request) (services.Area, error) {
	q := r.URL.Query()

	parse := func(name string) (float64, error) {
		v, err := strconv.ParseFloat(q.Get(name), 64)
		if err != nil {
			return 0, errors.New(name + " must be a number")
		}
		return v, nil
	}

	var (
		area services.Area
		err  error
	)
	if area.North, err = parse("north"); err != nil {
		return services.Area{}, err
	}
	if area.South, err = parse("south"); err != nil {
		return services.Area{}, err
	}
	if area.East, err = parse("east"); err != nil {
		return services.Area{}, err
	}
	if area.West, err = parse("west"); err != nil {
		return services.Area{}, err
	}

	return area, nil
}
