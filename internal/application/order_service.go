package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
	"github.com/carebridge/carebridge-api/internal/domain/repository"
	"github.com/carebridge/carebridge-api/pkg/mailer"
)

var (
	ErrMedicineNotFound = errors.New("medicine not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrInvalidStatus    = errors.New("unknown order status")
	ErrBadTransition    = errors.New("status transition not allowed")
)

// OrderService places medicine orders and drives the status pipeline.
type OrderService struct {
	Orders    repository.OrderRepository
	Medicines repository.MedicineRepository
	Notifier  *Notifier
	Logger    *logrus.Logger
}

func NewOrderService(orders repository.OrderRepository, medicines repository.MedicineRepository, notifier *Notifier, logger *logrus.Logger) *OrderService {
	return &OrderService{Orders: orders, Medicines: medicines, Notifier: notifier, Logger: logger}
}

type PlaceOrderInput struct {
	UserID     string
	MedicineID string
	Quantity   int
}

// Place verifies the medicine exists and creates a Pending order,
// returned joined with buyer and medicine display fields.
func (s *OrderService) Place(ctx context.Context, in PlaceOrderInput) (*entity.OrderDetail, error) {
	if in.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	m, err := s.Medicines.GetByID(ctx, in.MedicineID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMedicineNotFound
		}
		return nil, err
	}

	o := &entity.Order{
		UserID:     in.UserID,
		MedicineID: in.MedicineID,
		Quantity:   in.Quantity,
		Status:     entity.StatusPending,
	}
	if err := s.Orders.Create(ctx, o); err != nil {
		return nil, err
	}

	detail, err := s.Orders.GetDetail(ctx, o.ID)
	if err != nil {
		return nil, err
	}

	s.Notifier.Notify(ctx, detail.User.Email, mailer.KindOrderReceipt, map[string]any{
		"Name":     detail.User.Name,
		"Medicine": m.Name,
		"Quantity": o.Quantity,
		"Status":   o.Status,
	})
	return detail, nil
}

// ListForUser returns the caller's orders, newest first. Ownership
// isolation lives in the query: only rows with the session user id.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]entity.OrderDetail, error) {
	return s.Orders.ListByUser(ctx, userID)
}

// ListAll returns every order for the staff dashboard.
func (s *OrderService) ListAll(ctx context.Context) ([]entity.OrderDetail, error) {
	return s.Orders.ListAll(ctx)
}

// UpdateStatus moves an order along the pipeline. Repeating the
// current status is a no-op so retried updates stay idempotent;
// Delivered and Cancelled are terminal.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	cur, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if cur.Status == status {
		return cur, nil
	}
	if !entity.CanTransition(cur.Status, status) {
		return nil, ErrBadTransition
	}

	updated, err := s.Orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if detail, dErr := s.Orders.GetDetail(ctx, orderID); dErr == nil && detail.User != nil {
		s.Notifier.Notify(ctx, detail.User.Email, mailer.KindOrderStatus, map[string]any{
			"Name":     detail.User.Name,
			"Medicine": detail.Medicine.Name,
			"Status":   updated.Status,
		})
	}
	return updated, nil
}
