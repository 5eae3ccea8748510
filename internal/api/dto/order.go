package dto

type OrderResponse struct {
	OrderID           int     `json:"order_id"`
	Status            string  `json:"status"`
	Weight            float64 `json:"weight"`
	PickupLat         float64 `json:"pickup_lat"`
	PickupLon         float64 `json:"pickup_lon"`
	DeliveryLat       float64 `json:"delivery_lat"`
	DeliveryLon       float64 `json:"delivery_lon"`
	AssignedVehicleID int     `json:"assigned_vehicle_id"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type UpdateOrderStatusRequest struct {
	Status    string `json:"status"`
	VehicleID int    `json:"vehicle_id"`
}
