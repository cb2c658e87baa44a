package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
	"github.com/carebridge/carebridge-api/internal/domain/repository"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	if o.Status == "" {
		o.Status = entity.StatusPending
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO orders (user_id, medicine_id, quantity, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, o.UserID, o.MedicineID, o.Quantity, o.Status)
	return mapError(row.Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt))
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o := &entity.Order{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, medicine_id, quantity, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id)
	if err := row.Scan(&o.ID, &o.UserID, &o.MedicineID, &o.Quantity, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	return o, nil
}

const orderDetailQuery = `
	SELECT o.id, o.user_id, o.medicine_id, o.quantity, o.status, o.created_at, o.updated_at,
	       u.id, u.name, u.email, u.phone,
	       m.id, m.name, m.price
	FROM orders o
	JOIN users u ON u.id = o.user_id
	JOIN medicines m ON m.id = o.medicine_id
`

func scanOrderDetail(row interface{ Scan(...any) error }) (*entity.OrderDetail, error) {
	d := &entity.OrderDetail{User: &entity.UserSummary{}, Medicine: &entity.MedicineSummary{}}
	err := row.Scan(
		&d.ID, &d.UserID, &d.MedicineID, &d.Quantity, &d.Status, &d.CreatedAt, &d.UpdatedAt,
		&d.User.ID, &d.User.Name, &d.User.Email, &d.User.Phone,
		&d.Medicine.ID, &d.Medicine.Name, &d.Medicine.Price,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return d, nil
}

func (r *OrderRepository) GetDetail(ctx context.Context, id string) (*entity.OrderDetail, error) {
	return scanOrderDetail(r.pool.QueryRow(ctx, orderDetailQuery+` WHERE o.id = $1`, id))
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]entity.OrderDetail, error) {
	rows, err := r.pool.Query(ctx, orderDetailQuery+` WHERE o.user_id = $1 ORDER BY o.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrderDetails(rows)
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]entity.OrderDetail, error) {
	rows, err := r.pool.Query(ctx, orderDetailQuery+` ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrderDetails(rows)
}

func collectOrderDetails(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]entity.OrderDetail, error) {
	out := make([]entity.OrderDetail, 0)
	for rows.Next() {
		d, err := scanOrderDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	o := &entity.Order{}
	row := r.pool.QueryRow(ctx, `
		UPDATE orders
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, user_id, medicine_id, quantity, status, created_at, updated_at
	`, status, id)
	if err := row.Scan(&o.ID, &o.UserID, &o.MedicineID, &o.Quantity, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	return o, nil
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
