package repository

import (
	"context"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
)

// OrderRepository persists medicine orders and their status pipeline.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// GetDetail returns the order joined with buyer and medicine
	// display fields.
	GetDetail(ctx context.Context, id string) (*entity.OrderDetail, error)
	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]entity.OrderDetail, error)
	// ListAll returns every order, newest first. Staff only.
	ListAll(ctx context.Context) ([]entity.OrderDetail, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error)
}
