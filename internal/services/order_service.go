package services

import (
	"context"

	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
)

type OrderService struct {
	Orders OrderStore
}

func (s OrderService) List(ctx context.Context, userID int64) ([]models.Order, error) {
	return s.Orders.ListByCustomer(ctx, userID)
}

// GetForOwner hides other customers' orders behind not found.
func (s OrderService) GetForOwner(ctx context.Context, userID, id int64) (models.Order, error) {
	o, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if o.CustomerID != userID {
		return models.Order{}, domain.NotFoundError{Resource: "order"}
	}
	return o, nil
}
