package application

import (
	"context"
	"errors"
	"time"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
	"github.com/carebridge/carebridge-api/internal/domain/repository"
	"github.com/carebridge/carebridge-api/pkg/video"
)

var (
	ErrNotVideoCall   = errors.New("appointment is not a video call")
	ErrNotParticipant = errors.New("caller is not part of this appointment")
)

// RoomService hands out video-room credentials for booked video
// consultations. The appointment id doubles as the room id.
type RoomService struct {
	Appointments repository.AppointmentRepository
	Issuer       *video.TokenIssuer
	AppID        int64
}

func NewRoomService(appointments repository.AppointmentRepository, issuer *video.TokenIssuer, appID int64) *RoomService {
	return &RoomService{Appointments: appointments, Issuer: issuer, AppID: appID}
}

// RoomCredentials is everything the client SDK needs to join.
type RoomCredentials struct {
	AppID     int64     `json:"app_id"`
	RoomID    string    `json:"room_id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Join verifies the caller owns a video-call appointment and issues a
// signed room token for it.
func (s *RoomService) Join(ctx context.Context, userID, appointmentID string) (*RoomCredentials, error) {
	a, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrApptNotFound
		}
		return nil, err
	}
	if a.UserID != userID {
		return nil, ErrNotParticipant
	}
	if a.Type != entity.TypeVideoCall {
		return nil, ErrNotVideoCall
	}

	token, exp, err := s.Issuer.Issue(a.ID, userID)
	if err != nil {
		return nil, err
	}
	return &RoomCredentials{
		AppID:     s.AppID,
		RoomID:    a.ID,
		UserID:    userID,
		Token:     token,
		ExpiresAt: exp,
	}, nil
}
