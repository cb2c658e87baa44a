package repository

import (
	"context"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
)

// UserRepository persists patient and staff accounts.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}
