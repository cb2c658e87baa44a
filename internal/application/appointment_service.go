package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
	"github.com/carebridge/carebridge-api/internal/domain/repository"
	"github.com/carebridge/carebridge-api/pkg/mailer"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidType    = errors.New("invalid appointment type")
	ErrSlotTaken      = errors.New("scheduling conflict for this time slot")
	ErrApptNotFound   = errors.New("appointment not found")
)

// AppointmentService books consultations and serves the patient and
// doctor listings.
type AppointmentService struct {
	Users        repository.UserRepository
	Doctors      repository.DoctorRepository
	Appointments repository.AppointmentRepository
	Notifier     *Notifier
	Logger       *logrus.Logger
}

func NewAppointmentService(users repository.UserRepository, doctors repository.DoctorRepository, appointments repository.AppointmentRepository, notifier *Notifier, logger *logrus.Logger) *AppointmentService {
	return &AppointmentService{
		Users:        users,
		Doctors:      doctors,
		Appointments: appointments,
		Notifier:     notifier,
		Logger:       logger,
	}
}

type BookInput struct {
	UserID   string
	DoctorID string
	Date     time.Time
	Type     string
}

// Book validates the consultation type, checks both parties exist,
// creates the appointment, and returns it joined with patient and
// doctor display fields.
func (s *AppointmentService) Book(ctx context.Context, in BookInput) (*entity.AppointmentDetail, error) {
	if !entity.ValidAppointmentType(in.Type) {
		return nil, ErrInvalidType
	}

	u, err := s.Users.GetByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	d, err := s.Doctors.GetByID(ctx, in.DoctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	appt := &entity.Appointment{
		UserID:   in.UserID,
		DoctorID: in.DoctorID,
		Date:     in.Date,
		Type:     in.Type,
	}
	if err := s.Appointments.Create(ctx, appt); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	detail, err := s.Appointments.GetDetail(ctx, appt.ID)
	if err != nil {
		// The row exists; fall back to assembling the join in memory.
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("appointment_id", appt.ID).Warn("detail fetch after create failed")
		}
		us, ds := u.Summary(), d.Summary()
		detail = &entity.AppointmentDetail{Appointment: *appt, User: &us, Doctor: &ds}
	}

	s.Notifier.Notify(ctx, u.Email, mailer.KindAppointmentBooked, map[string]any{
		"Name":       u.Name,
		"DoctorName": d.Name,
		"Specialty":  d.Specialty,
		"Type":       appt.Type,
		"Date":       appt.Date.Format("02 January 2006, 15:04 MST"),
	})
	return detail, nil
}

// ListForUser returns the caller's appointments, newest date first.
func (s *AppointmentService) ListForUser(ctx context.Context, userID string) ([]entity.AppointmentDetail, error) {
	return s.Appointments.ListByUser(ctx, userID)
}

// ListForDoctor returns a doctor's appointments joined with patient
// display fields.
func (s *AppointmentService) ListForDoctor(ctx context.Context, doctorID string) ([]entity.AppointmentDetail, error) {
	if _, err := s.Doctors.GetByID(ctx, doctorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return s.Appointments.ListByDoctor(ctx, doctorID)
}

// Get returns a single appointment without joins.
func (s *AppointmentService) Get(ctx context.Context, id string) (*entity.Appointment, error) {
	a, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrApptNotFound
		}
		return nil, err
	}
	return a, nil
}
