package repository

import (
	"context"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
)

// AppointmentRepository persists bookings and serves the joined
// listings patients and doctors see.
type AppointmentRepository interface {
	Create(ctx context.Context, a *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	// GetDetail returns the appointment joined with both the patient's
	// and the doctor's display fields.
	GetDetail(ctx context.Context, id string) (*entity.AppointmentDetail, error)
	// ListByUser returns the user's appointments joined with doctor
	// display fields, most recent date first.
	ListByUser(ctx context.Context, userID string) ([]entity.AppointmentDetail, error)
	// ListByDoctor returns the doctor's appointments joined with
	// patient display fields, most recent date first.
	ListByDoctor(ctx context.Context, doctorID string) ([]entity.AppointmentDetail, error)
}
