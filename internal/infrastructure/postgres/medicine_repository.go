package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
	"github.com/carebridge/carebridge-api/internal/domain/repository"
)

type MedicineRepository struct {
	pool *pgxpool.Pool
}

func NewMedicineRepository(pool *pgxpool.Pool) *MedicineRepository {
	return &MedicineRepository{pool: pool}
}

func (r *MedicineRepository) Create(ctx context.Context, m *entity.Medicine) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO medicines (name, description, price, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, m.Name, m.Description, m.Price, m.ImageURL)
	return mapError(row.Scan(&m.ID, &m.CreatedAt))
}

func (r *MedicineRepository) GetByID(ctx context.Context, id string) (*entity.Medicine, error) {
	m := &entity.Medicine{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, price, image_url, created_at
		FROM medicines
		WHERE id = $1
	`, id)
	if err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.ImageURL, &m.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return m, nil
}

func (r *MedicineRepository) List(ctx context.Context) ([]entity.Medicine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, price, image_url, created_at
		FROM medicines
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	medicines := make([]entity.Medicine, 0)
	for rows.Next() {
		var m entity.Medicine
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.ImageURL, &m.CreatedAt); err != nil {
			return nil, err
		}
		medicines = append(medicines, m)
	}
	return medicines, rows.Err()
}

var _ repository.MedicineRepository = (*MedicineRepository)(nil)
