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

// RoomModule issues video-room join credentials.
type RoomModule struct {
	Handler *handlers.RoomHandler
}

func NewRoomModule(svc *application.RoomService, logger *logrus.Logger) *RoomModule {
	return &RoomModule{Handler: handlers.NewRoomHandler(svc, logger)}
}

func (m *RoomModule) Register(rg *gin.RouterGroup) {
	tokenLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil)

	auth := rg.Group("/rooms")
	auth.Use(middleware.Auth(container.GetRedis(), container.GetJWT()))
	{
		auth.POST("/token", tokenLimiter, m.Handler.Token)
	}
}
