package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
	"github.com/carebridge/carebridge-api/pkg/video"
)

func roomFixture(t *testing.T) (*RoomService, *AppointmentService) {
	t.Helper()
	users := newFakeUserRepo()
	for _, u := range []entity.User{
		{Name: "Ada", Email: "ada@example.com", Password: "hash", Phone: "+15550001111", Role: entity.RolePatient},
		{Name: "Bob", Email: "bob@example.com", Password: "hash", Phone: "+15550003333", Role: entity.RolePatient},
	} {
		u := u
		if err := users.Create(context.Background(), &u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	doctors := newFakeDoctorRepo(&entity.Doctor{
		ID: "doc-1", Name: "Dr. Hart", Specialty: "Cardiology", Email: "hart@example.com",
	})
	appts := newFakeAppointmentRepo(users, doctors)
	apptSvc := NewAppointmentService(users, doctors, appts, nil, logrus.New())
	issuer := video.NewTokenIssuer(12345, "server-secret", time.Minute)
	return NewRoomService(appts, issuer, 12345), apptSvc
}

func TestJoinIssuesCredentials(t *testing.T) {
	rooms, appts := roomFixture(t)
	booked, err := appts.Book(context.Background(), BookInput{
		UserID: "user-1", DoctorID: "doc-1",
		Date: time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC), Type: entity.TypeVideoCall,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	creds, err := rooms.Join(context.Background(), "user-1", booked.ID)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if creds.RoomID != booked.ID {
		t.Errorf("room id = %q, want appointment id %q", creds.RoomID, booked.ID)
	}
	if creds.AppID != 12345 {
		t.Errorf("app id = %d", creds.AppID)
	}

	roomID, userID, err := rooms.Issuer.Verify(creds.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if roomID != booked.ID || userID != "user-1" {
		t.Errorf("token binds (%q, %q), want (%q, user-1)", roomID, userID, booked.ID)
	}
}

func TestJoinRejectsOtherPatients(t *testing.T) {
	rooms, appts := roomFixture(t)
	booked, err := appts.Book(context.Background(), BookInput{
		UserID: "user-1", DoctorID: "doc-1",
		Date: time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC), Type: entity.TypeVideoCall,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	if _, err := rooms.Join(context.Background(), "user-2", booked.ID); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("other patient err = %v, want ErrNotParticipant", err)
	}
	if _, err := rooms.Join(context.Background(), "user-1", "appt-404"); !errors.Is(err, ErrApptNotFound) {
		t.Errorf("unknown appointment err = %v, want ErrApptNotFound", err)
	}
}

func TestJoinRequiresVideoCallType(t *testing.T) {
	rooms, appts := roomFixture(t)
	booked, err := appts.Book(context.Background(), BookInput{
		UserID: "user-1", DoctorID: "doc-1",
		Date: time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC), Type: entity.TypeChat,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if _, err := rooms.Join(context.Background(), "user-1", booked.ID); !errors.Is(err, ErrNotVideoCall) {
		t.Errorf("chat appointment err = %v, want ErrNotVideoCall", err)
	}
}
