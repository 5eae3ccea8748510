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

// OrderHandler exposes order snapshot and status endpoints.
type OrderHandler struct {
	Repo ports.OrderRepository
}

func orderToResponse(o *domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		OrderID:           o.ID,
		Status:            o.Status,
		Weight:            o.Weight,
		PickupLat:         o.Pickup.Lat,
		PickupLon:         o.Pickup.Lon,
		DeliveryLat:       o.Delivery.Lat,
		DeliveryLon:       o.Delivery.Lon,
		AssignedVehicleID: o.AssignedVehicleID,
	}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	orders, err := h.Repo.ListOrders(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		log.Printf("list orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListOrdersResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
	}
	for _, o := range orders {
		res.Orders = append(res.Orders, orderToResponse(o))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.Repo.GetOrder(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		log.Printf("get order failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, orderToResponse(order))
}

var validOrderStatuses = map[string]struct{}{
	domain.OrderPending:    {},
	domain.OrderInProgress: {},
	domain.OrderCompleted:  {},
	domain.OrderCancelled:  {},
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid order id")
		return
	}

	var req dto.UpdateOrderStatusRequest

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

	if _, ok := validOrderStatuses[req.Status]; !ok {
		writeError(w, r, http.StatusBadRequest, "invalid order status")
		return
	}

	err = h.Repo.UpdateOrderStatus(r.Context(), id, req.Status, req.VehicleID)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		log.Printf("update order status failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"message": "status updated"})
}
