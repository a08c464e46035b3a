package service

import (
	"context"

	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/models"
	"github.com/google/uuid"
)

// OrderService accepts validated orders. Nothing is stored and product
// ids are not checked against the catalog.
type OrderService struct{}

// NewOrderService creates a new order service
func NewOrderService() *OrderService {
	return &OrderService{}
}

// SubmitOrder accepts req and returns it unchanged under a fresh reference.
func (s *OrderService) SubmitOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &models.Order{
		Reference: generateOrderReference(),
		Data:      req.Data,
	}, nil
}

// generateOrderReference generates a unique order reference using UUID
func generateOrderReference() string {
	return uuid.New().String()
}
