package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/carebridge-api/internal/application"
	"github.com/carebridge/carebridge-api/internal/container"
	handlers "github.com/carebridge/carebridge-api/internal/interface/http"
	"github.com/carebridge/carebridge-api/internal/interface/middleware"
)

// AccountModule wires account HTTP handlers into routes.
// Public: POST /api/auth/signup, POST /api/auth/login, POST /api/auth/refresh
// Protected: POST /api/auth/logout, GET/PUT /api/profile, POST /api/profile/avatar
type AccountModule struct {
	Handler *handlers.AccountHandler
}

func NewAccountModule(svc *application.AccountService, logger *logrus.Logger) *AccountModule {
	cfg := container.GetConfig()
	return &AccountModule{Handler: handlers.NewAccountHandler(svc, logger, cfg.CookieDomain, cfg.CookieSecure)}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil) // 5 req/min per IP
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)        // 10 req/min per IP
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/auth/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.Profile)
		auth.PUT("/profile", m.Handler.UpdateProfile)
		auth.POST("/profile/avatar", m.Handler.UploadAvatar)
	}
}
