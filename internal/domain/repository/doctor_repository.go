package repository

import (
	"context"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
)

// DoctorRepository reads the doctor roster. Create exists for the
// seeder only; the API never writes doctors.
type DoctorRepository interface {
	Create(ctx context.Context, d *entity.Doctor) error
	GetByID(ctx context.Context, id string) (*entity.Doctor, error)
	List(ctx context.Context) ([]entity.Doctor, error)
}
