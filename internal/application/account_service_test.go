package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
	"github.com/carebridge/carebridge-api/pkg/helpers"
)

func newAccountService(repo *fakeUserRepo) *AccountService {
	jwt := helpers.NewJWTManager("test-access", "test-refresh", time.Minute, time.Hour)
	logger := logrus.New()
	return NewAccountService(repo, jwt, nil, logger, nil, nil, "", time.Hour)
}

func TestSignupHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAccountService(repo)

	u, err := svc.Signup(context.Background(), SignupInput{
		Name:     "Ada",
		Email:    "Ada@Example.COM",
		Password: "supersecret",
		Phone:    "+15550001111",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if u.Email != "ada@example.com" {
		t.Errorf("email = %q, want lowercase", u.Email)
	}
	if u.Role != entity.RolePatient {
		t.Errorf("role = %q, want patient", u.Role)
	}
	if u.Password == "supersecret" {
		t.Fatal("password stored in plain text")
	}
	if !helpers.CompareHashAndPassword(u.Password, "supersecret") {
		t.Error("stored hash does not match original password")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAccountService(repo)

	in := SignupInput{Name: "Ada", Email: "ada@example.com", Password: "supersecret", Phone: "+15550001111"}
	if _, err := svc.Signup(context.Background(), in); err != nil {
		t.Fatalf("first Signup: %v", err)
	}
	if _, err := svc.Signup(context.Background(), in); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second Signup err = %v, want ErrEmailTaken", err)
	}
}

func TestSignupLoginRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAccountService(repo)

	if _, err := svc.Signup(context.Background(), SignupInput{
		Name: "Ada", Email: "ada@example.com", Password: "supersecret", Phone: "+15550001111",
	}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	u, pair, err := svc.Login(context.Background(), "ada@example.com", "supersecret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Name != "Ada" {
		t.Errorf("name = %q", u.Name)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Error("token pair incomplete")
	}

	if _, _, err := svc.Login(context.Background(), "ada@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "supersecret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAccountService(repo)

	u, err := svc.Signup(context.Background(), SignupInput{
		Name: "Ada", Email: "ada@example.com", Password: "supersecret", Phone: "+15550001111",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	pair, err := svc.IssueTokens(context.Background(), u)
	if err != nil {
		t.Fatalf("IssueTokens: %v", err)
	}

	next, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if next.AccessToken == "" || next.RefreshToken == "" {
		t.Error("refreshed pair incomplete")
	}

	if _, err := svc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("access token used as refresh: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Refresh(context.Background(), "garbage"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("garbage token: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAccountService(repo)

	u, err := svc.Signup(context.Background(), SignupInput{
		Name: "Ada", Email: "ada@example.com", Password: "supersecret", Phone: "+15550001111",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	got, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{Name: "Ada L."})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.Name != "Ada L." {
		t.Errorf("name = %q", got.Name)
	}
	if got.Phone != "+15550001111" {
		t.Errorf("phone = %q, want unchanged", got.Phone)
	}

	if _, err := svc.UpdateProfile(context.Background(), "missing", UpdateProfileInput{Name: "X"}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user err = %v, want ErrUserNotFound", err)
	}
}
