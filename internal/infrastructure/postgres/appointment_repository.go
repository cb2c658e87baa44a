package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
	"github.com/carebridge/carebridge-api/internal/domain/repository"
)

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *entity.Appointment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (user_id, doctor_id, date, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, a.UserID, a.DoctorID, a.Date, a.Type)
	return mapError(row.Scan(&a.ID, &a.CreatedAt))
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	a := &entity.Appointment{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, doctor_id, date, type, created_at
		FROM appointments
		WHERE id = $1
	`, id)
	if err := row.Scan(&a.ID, &a.UserID, &a.DoctorID, &a.Date, &a.Type, &a.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

// GetDetail joins both sides so the booking response can echo patient
// and doctor display fields in one round trip.
func (r *AppointmentRepository) GetDetail(ctx context.Context, id string) (*entity.AppointmentDetail, error) {
	d := &entity.AppointmentDetail{User: &entity.UserSummary{}, Doctor: &entity.DoctorSummary{}}
	row := r.pool.QueryRow(ctx, `
		SELECT a.id, a.user_id, a.doctor_id, a.date, a.type, a.created_at,
		       u.name, u.email, u.phone,
		       d.name, d.specialty, d.email, d.phone
		FROM appointments a
		JOIN users u ON u.id = a.user_id
		JOIN doctors d ON d.id = a.doctor_id
		WHERE a.id = $1
	`, id)
	err := row.Scan(
		&d.ID, &d.UserID, &d.DoctorID, &d.Date, &d.Type, &d.CreatedAt,
		&d.User.Name, &d.User.Email, &d.User.Phone,
		&d.Doctor.Name, &d.Doctor.Specialty, &d.Doctor.Email, &d.Doctor.Phone,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return d, nil
}

func (r *AppointmentRepository) ListByUser(ctx context.Context, userID string) ([]entity.AppointmentDetail, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.user_id, a.doctor_id, a.date, a.type, a.created_at,
		       d.name, d.specialty, d.email, d.phone
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		WHERE a.user_id = $1
		ORDER BY a.date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.AppointmentDetail, 0)
	for rows.Next() {
		d := entity.AppointmentDetail{Doctor: &entity.DoctorSummary{}}
		err := rows.Scan(
			&d.ID, &d.UserID, &d.DoctorID, &d.Date, &d.Type, &d.CreatedAt,
			&d.Doctor.Name, &d.Doctor.Specialty, &d.Doctor.Email, &d.Doctor.Phone,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *AppointmentRepository) ListByDoctor(ctx context.Context, doctorID string) ([]entity.AppointmentDetail, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.user_id, a.doctor_id, a.date, a.type, a.created_at,
		       u.name, u.email
		FROM appointments a
		JOIN users u ON u.id = a.user_id
		WHERE a.doctor_id = $1
		ORDER BY a.date DESC
	`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.AppointmentDetail, 0)
	for rows.Next() {
		d := entity.AppointmentDetail{User: &entity.UserSummary{}}
		err := rows.Scan(
			&d.ID, &d.UserID, &d.DoctorID, &d.Date, &d.Type, &d.CreatedAt,
			&d.User.Name, &d.User.Email,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

var _ repository.AppointmentRepository = (*AppointmentRepository)(nil)
