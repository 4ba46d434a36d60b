package adaptor

import (
	"encoding/json"
	"net/http"

	"game-ghor/internal/dto/request"
	"game-ghor/internal/usecase"
	"game-ghor/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create order")
		return
	}

	utils.ResponseCreated(w, "Order placed", order)
}

// GetUserOrders handles GET /orders
func (h *OrderHandler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orders, err := h.service.GetUserOrders(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get user orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved", orders)
}

// ListOrders handles GET /admin/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	orders, err := h.service.ListOrders(r.Context(), query.Get("status"), query.Get("q"))
	if err != nil {
		handleServiceError(w, h.log, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved", orders)
}

// SetOrderStatus handles PATCH /admin/orders/{id}
func (h *OrderHandler) SetOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	var req request.OrderStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	order, err := h.service.SetOrderStatus(r.Context(), orderID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "set order status")
		return
	}

	utils.ResponseSuccess(w, "Order status updated", order)
}
