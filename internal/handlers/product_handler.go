package handlers

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/service"
)

// ProductHandler handles category and product listing requests
type ProductHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListCategories handles GET /api/v1/categories
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	h.logger.Debug("listing categories", "count", len(categories))
	WriteJSON(w, http.StatusOK, dataResponse{Data: categories}, h.logger)
}

// ListProducts handles GET /api/v1/products?page=&categoryId=
//
// page defaults to 1 when absent or not a number; categoryId filters
// only when it parses to a non-zero value. Decimals are truncated.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, ok := parseInt(query.Get("page"))
	if !ok {
		page = 1
	}
	categoryID, _ := parseInt(query.Get("categoryId"))

	result, err := h.service.ListProducts(r.Context(), page, categoryID)
	if err != nil {
		h.logger.Error("failed to list products", "page", page, "categoryId", categoryID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, result, h.logger)
}

// parseInt reads a query value as an integer, truncating decimals toward
// zero. ok is false for empty or non-numeric input.
func parseInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	f = math.Trunc(f)
	if f >= math.MaxInt32 {
		return math.MaxInt32, true
	}
	if f <= math.MinInt32 {
		return math.MinInt32, true
	}
	return int(f), true
}
