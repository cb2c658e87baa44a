package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
)

func appointmentFixture(t *testing.T) (*AppointmentService, *fakeUserRepo, *fakeDoctorRepo) {
	t.Helper()
	users := newFakeUserRepo()
	if err := users.Create(context.Background(), &entity.User{
		Name: "Ada", Email: "ada@example.com", Password: "hash", Phone: "+15550001111", Role: entity.RolePatient,
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	doctors := newFakeDoctorRepo(&entity.Doctor{
		ID: "doc-1", Name: "Dr. Hart", Specialty: "Cardiology", Email: "hart@example.com", Phone: "+15550002222",
	})
	appts := newFakeAppointmentRepo(users, doctors)
	svc := NewAppointmentService(users, doctors, appts, nil, logrus.New())
	return svc, users, doctors
}

func TestBookReturnsJoinedDetail(t *testing.T) {
	svc, _, _ := appointmentFixture(t)

	date := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	detail, err := svc.Book(context.Background(), BookInput{
		UserID: "user-1", DoctorID: "doc-1", Date: date, Type: entity.TypeVideoCall,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if detail.ID == "" {
		t.Error("appointment id not assigned")
	}
	if detail.Doctor == nil || detail.Doctor.Name != "Dr. Hart" || detail.Doctor.Specialty != "Cardiology" {
		t.Errorf("doctor summary = %+v", detail.Doctor)
	}
	if detail.User == nil || detail.User.Email != "ada@example.com" {
		t.Errorf("user summary = %+v", detail.User)
	}
	if !detail.Date.Equal(date) {
		t.Errorf("date = %v, want %v", detail.Date, date)
	}
}

func TestBookValidation(t *testing.T) {
	svc, _, _ := appointmentFixture(t)
	date := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

	if _, err := svc.Book(context.Background(), BookInput{
		UserID: "user-1", DoctorID: "doc-1", Date: date, Type: "Telepathy",
	}); !errors.Is(err, ErrInvalidType) {
		t.Errorf("unknown type err = %v, want ErrInvalidType", err)
	}

	if _, err := svc.Book(context.Background(), BookInput{
		UserID: "user-1", DoctorID: "doc-404", Date: date, Type: entity.TypeChat,
	}); !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("unknown doctor err = %v, want ErrDoctorNotFound", err)
	}

	if _, err := svc.Book(context.Background(), BookInput{
		UserID: "ghost", DoctorID: "doc-1", Date: date, Type: entity.TypeChat,
	}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user err = %v, want ErrUserNotFound", err)
	}
}

func TestBookDoubleBookedSlot(t *testing.T) {
	svc, _, _ := appointmentFixture(t)
	date := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

	if _, err := svc.Book(context.Background(), BookInput{
		UserID: "user-1", DoctorID: "doc-1", Date: date, Type: entity.TypeVideoCall,
	}); err != nil {
		t.Fatalf("first Book: %v", err)
	}
	if _, err := svc.Book(context.Background(), BookInput{
		UserID: "user-1", DoctorID: "doc-1", Date: date, Type: entity.TypeChat,
	}); !errors.Is(err, ErrSlotTaken) {
		t.Errorf("same slot err = %v, want ErrSlotTaken", err)
	}
	// Another time with the same doctor is fine.
	if _, err := svc.Book(context.Background(), BookInput{
		UserID: "user-1", DoctorID: "doc-1", Date: date.Add(time.Hour), Type: entity.TypeChat,
	}); err != nil {
		t.Errorf("different slot err = %v", err)
	}
}

func TestListForUserIsolation(t *testing.T) {
	svc, users, _ := appointmentFixture(t)
	if err := users.Create(context.Background(), &entity.User{
		Name: "Bob", Email: "bob@example.com", Password: "hash", Phone: "+15550003333", Role: entity.RolePatient,
	}); err != nil {
		t.Fatalf("seed second user: %v", err)
	}

	base := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	for i, uid := range []string{"user-1", "user-1", "user-2"} {
		if _, err := svc.Book(context.Background(), BookInput{
			UserID: uid, DoctorID: "doc-1", Date: base.Add(time.Duration(i) * time.Hour), Type: entity.TypeChat,
		}); err != nil {
			t.Fatalf("Book %d: %v", i, err)
		}
	}

	mine, err := svc.ListForUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("len = %d, want 2", len(mine))
	}
	for _, a := range mine {
		if a.UserID != "user-1" {
			t.Errorf("leaked appointment for %q", a.UserID)
		}
	}
	if mine[0].Date.Before(mine[1].Date) {
		t.Error("listing not sorted newest first")
	}
}

func TestListForDoctor(t *testing.T) {
	svc, _, _ := appointmentFixture(t)
	date := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	if _, err := svc.Book(context.Background(), BookInput{
		UserID: "user-1", DoctorID: "doc-1", Date: date, Type: entity.TypeInPerson,
	}); err != nil {
		t.Fatalf("Book: %v", err)
	}

	appts, err := svc.ListForDoctor(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("ListForDoctor: %v", err)
	}
	if len(appts) != 1 {
		t.Fatalf("len = %d, want 1", len(appts))
	}
	if appts[0].User == nil || appts[0].User.Name != "Ada" {
		t.Errorf("patient summary = %+v", appts[0].User)
	}

	if _, err := svc.ListForDoctor(context.Background(), "doc-404"); !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("unknown doctor err = %v, want ErrDoctorNotFound", err)
	}
}
