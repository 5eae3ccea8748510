package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"fleet-dispatch-service/internal/adapters/repositories"
	"fleet-dispatch-service/internal/api/dto"
	"fleet-dispatch-service/internal/domain"
	"fleet-dispatch-service/internal/ports"
)

// VehicleHandler exposes vehicle snapshot endpoints.
type VehicleHandler struct {
	Repo ports.VehicleRepository
}

func vehicleToResponse(v *domain.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		VehicleID: v.ID,
		Type:      v.Type,
		Status:    v.Status,
		MaxWeight: v.MaxWeight,
		Lat:       v.Location.Lat,
		Lon:       v.Location.Lon,
	}
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	vehicles, err := h.Repo.ListVehicles(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		log.Printf("list vehicles failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListVehiclesResponse{
		Vehicles: make([]dto.VehicleResponse, 0, len(vehicles)),
	}
	for _, v := range vehicles {
		res.Vehicles = append(res.Vehicles, vehicleToResponse(v))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	vehicle, err := h.Repo.GetVehicle(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "vehicle not found")
		return
	}
	if err != nil {
		log.Printf("get vehicle failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, vehicleToResponse(vehicle))
}

func (h *VehicleHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		w.Header().Set("Allow", http.MethodPatch)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	var req dto.UpdateLocationRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.Lat < -90 || req.Lat > 90 || req.Lon < -180 || req.Lon > 180 {
		writeError(w, r, http.StatusBadRequest, "lat must be in [-90,90] and lon in [-180,180]")
		return
	}

	loc := domain.Coordinate{Lat: req.Lat, Lon: req.Lon}
	err = h.Repo.UpdateVehicleLocation(r.Context(), id, loc)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "vehicle not found")
		return
	}
	if err != nil {
		log.Printf("update vehicle location failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"message": "location updated"})
}
