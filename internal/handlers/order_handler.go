package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/validation"
)

// maxOrderBodyBytes bounds the size of an order submission
const maxOrderBodyBytes = 1 << 20

// OrderReferenceHeader carries the reference of an accepted order
const OrderReferenceHeader = "X-Order-Reference"

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /api/v1/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxOrderBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, http.StatusRequestEntityTooLarge, "Request body too large", h.log)
			return
		}
		h.log.Error("failed to read order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	req, err := validation.ValidateOrder(body)
	if err != nil {
		var ve *validation.ValidationError
		if errors.As(err, &ve) {
			h.log.Info("rejected order", "issues", len(ve.Issues), "error", err)
			writeValidationError(w, ve, h.log)
			return
		}
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.orderService.SubmitOrder(r.Context(), req)
	if err != nil {
		h.log.Error("failed to submit order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	w.Header().Set(OrderReferenceHeader, order.Reference)
	WriteJSON(w, http.StatusOK, dataResponse{Data: order.Data}, h.log)
	h.log.Info("order accepted", "reference", order.Reference, "lines", len(order.Data))
}
