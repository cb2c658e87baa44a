package repository

import (
	"context"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
)

// MedicineRepository reads the medicine catalog. Create exists for the
// seeder only.
type MedicineRepository interface {
	Create(ctx context.Context, m *entity.Medicine) error
	GetByID(ctx context.Context, id string) (*entity.Medicine, error)
	List(ctx context.Context) ([]entity.Medicine, error)
}
