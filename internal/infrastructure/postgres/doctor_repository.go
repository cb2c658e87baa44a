package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
	"github.com/carebridge/carebridge-api/internal/domain/repository"
)

type DoctorRepository struct {
	pool *pgxpool.Pool
}

func NewDoctorRepository(pool *pgxpool.Pool) *DoctorRepository {
	return &DoctorRepository{pool: pool}
}

func (r *DoctorRepository) Create(ctx context.Context, d *entity.Doctor) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO doctors (name, specialty, email, phone)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, specialty = EXCLUDED.specialty, phone = EXCLUDED.phone
		RETURNING id, created_at
	`, d.Name, d.Specialty, d.Email, d.Phone)
	return mapError(row.Scan(&d.ID, &d.CreatedAt))
}

func (r *DoctorRepository) GetByID(ctx context.Context, id string) (*entity.Doctor, error) {
	d := &entity.Doctor{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, specialty, email, phone, created_at
		FROM doctors
		WHERE id = $1
	`, id)
	if err := row.Scan(&d.ID, &d.Name, &d.Specialty, &d.Email, &d.Phone, &d.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return d, nil
}

func (r *DoctorRepository) List(ctx context.Context) ([]entity.Doctor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, specialty, email, phone, created_at
		FROM doctors
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	doctors := make([]entity.Doctor, 0)
	for rows.Next() {
		var d entity.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty, &d.Email, &d.Phone, &d.CreatedAt); err != nil {
			return nil, err
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

var _ repository.DoctorRepository = (*DoctorRepository)(nil)
