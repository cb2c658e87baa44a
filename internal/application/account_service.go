package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
	"github.com/carebridge/carebridge-api/internal/domain/repository"
	"github.com/carebridge/carebridge-api/pkg/helpers"
	"github.com/carebridge/carebridge-api/pkg/mailer"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// AccountService owns signup, sign-in, sessions, and profile
// management. It is the identity resolver every user-scoped operation
// sits behind.
type AccountService struct {
	Repo       repository.UserRepository
	JWT        *helpers.JWTManager
	Redis      *redis.Client
	Logger     *logrus.Logger
	Notifier   *Notifier
	GCS        *storage.Client
	GCSBucket  string
	SessionTTL time.Duration
}

func NewAccountService(repo repository.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger, notifier *Notifier, gcs *storage.Client, gcsBucket string, sessionTTL time.Duration) *AccountService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AccountService{
		Repo:       repo,
		JWT:        jwt,
		Redis:      rdb,
		Logger:     logger,
		Notifier:   notifier,
		GCS:        gcs,
		GCSBucket:  gcsBucket,
		SessionTTL: sessionTTL,
	}
}

// TokenPair is the access/refresh pair written into auth cookies.
type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// Signup creates a patient account with a bcrypt-hashed credential.
func (s *AccountService) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Name:     in.Name,
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: hash,
		Phone:    in.Phone,
		Role:     entity.RolePatient,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.Notifier.Notify(ctx, u.Email, mailer.KindWelcome, map[string]any{"Name": u.Name})
	return u, nil
}

// Authenticate validates email/password without issuing tokens.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueTokens generates the token pair and records the session in
// Redis under a fresh session id.
func (s *AccountService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, u.Role, sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, u.Role, sid)
	if err != nil {
		return TokenPair{}, err
	}

	if s.Redis != nil {
		key := helpers.SessionKey(u.ID)
		fields := map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.Name,
			"role":       u.Role,
			"sid":        sid,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		}
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, s.SessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Login authenticates and opens a session.
func (s *AccountService) Login(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Refresh rotates the session id and token pair given a valid refresh
// token whose session is still live.
func (s *AccountService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	u, err := s.Repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, err
	}
	if s.Redis != nil {
		data, rErr := s.Redis.HGetAll(ctx, helpers.SessionKey(u.ID)).Result()
		if rErr != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return TokenPair{}, ErrInvalidCredentials
		}
	}
	return s.IssueTokens(ctx, u)
}

// Logout drops the server-side session.
func (s *AccountService) Logout(ctx context.Context, userID string) {
	if s.Redis == nil || userID == "" {
		return
	}
	if err := s.Redis.Del(ctx, helpers.SessionKey(userID)).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("failed to drop session")
	}
}

// Profile returns the caller's account.
func (s *AccountService) Profile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

type UpdateProfileInput struct {
	Name  string
	Phone string
}

// UpdateProfile applies the non-empty fields and refreshes the cached
// session display fields.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Phone != "" {
		u.Phone = in.Phone
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	if s.Redis != nil {
		key := helpers.SessionKey(u.ID)
		if err := s.Redis.HSet(ctx, key, map[string]any{"name": u.Name}).Err(); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("failed to refresh session fields")
		}
	}
	return u, nil
}

// UploadAvatar stores the image in GCS and records its public URL on
// the profile.
func (s *AccountService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("object storage not configured")
	}
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	u.AvatarURL = url
	if err := s.Repo.Update(ctx, u); err != nil {
		return "", err
	}
	return url, nil
}
