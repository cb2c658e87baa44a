package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
	"github.com/carebridge/carebridge-api/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, name, email, password_hash, phone, role, avatar_url, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*entity.User, error) {
	u := &entity.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Phone, &u.Role, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if u.Role == "" {
		u.Role = entity.RolePatient
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, phone, role, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, u.Name, u.Email, u.Password, u.Phone, u.Role, u.AvatarURL)
	return mapError(row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET name = $1, phone = $2, avatar_url = $3, updated_at = $4
		WHERE id = $5
	`, u.Name, u.Phone, u.AvatarURL, u.UpdatedAt, u.ID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
