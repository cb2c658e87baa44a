package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/carebridge-api/internal/application"
	"github.com/carebridge/carebridge-api/internal/domain/entity"
	"github.com/carebridge/carebridge-api/pkg/helpers"
	"github.com/carebridge/carebridge-api/pkg/response"
	"github.com/carebridge/carebridge-api/pkg/validation"
)

// AccountHandler serves signup, sign-in, session, and profile routes.
type AccountHandler struct {
	Svc     *application.AccountService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAccountHandler(svc *application.AccountService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Phone    string `json:"phone" binding:"required,phone"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone" binding:"omitempty,phone"`
}

func userView(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"phone":      u.Phone,
		"role":       u.Role,
		"avatar_url": u.AvatarURL,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

func (h *AccountHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Signup(c.Request.Context(), application.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error[any](c, http.StatusConflict, "email already registered", nil)
			return
		}
		h.Logger.WithError(err).Error("signup failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create account", nil)
		return
	}
	response.Success(c, http.StatusCreated, userView(u), "account created", nil)
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, pair, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to sign in", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, userView(u), "login successful", gin.H{
		"access_expires_at":  pair.AccessTokenExpiry,
		"refresh_expires_at": pair.RefreshTokenExpiry,
	})
}

func (h *AccountHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie(helpers.RefreshCookie)
	if err != nil || refresh == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	pair, err := h.Svc.Refresh(c.Request.Context(), refresh)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
			return
		}
		h.Logger.WithError(err).Error("token refresh failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to refresh token", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success[any](c, http.StatusOK, gin.H{"refreshed": true}, "token refreshed", gin.H{
		"access_expires_at":  pair.AccessTokenExpiry,
		"refresh_expires_at": pair.RefreshTokenExpiry,
	})
}

func (h *AccountHandler) Logout(c *gin.Context) {
	h.Svc.Logout(c.Request.Context(), c.GetString("userID"))
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

func (h *AccountHandler) Profile(c *gin.Context) {
	u, err := h.Svc.Profile(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("profile load failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to load profile", nil)
		return
	}
	response.Success(c, http.StatusOK, userView(u), "profile", nil)
}

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), c.GetString("userID"), application.UpdateProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("profile update failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to update profile", nil)
		return
	}
	response.Success(c, http.StatusOK, userView(u), "profile updated", nil)
}

// UploadAvatar accepts a multipart "avatar" file and stores it in
// object storage.
func (h *AccountHandler) UploadAvatar(c *gin.Context) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "avatar file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cannot read avatar file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), c.GetString("userID"), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("avatar upload failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to upload avatar", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"avatar_url": url}, "avatar updated", nil)
}
