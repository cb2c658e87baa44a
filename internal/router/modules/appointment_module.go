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

// AppointmentModule books consultations and lists the caller's agenda.
type AppointmentModule struct {
	Handler *handlers.AppointmentHandler
}

func NewAppointmentModule(svc *application.AppointmentService, logger *logrus.Logger) *AppointmentModule {
	return &AppointmentModule{Handler: handlers.NewAppointmentHandler(svc, logger)}
}

func (m *AppointmentModule) Register(rg *gin.RouterGroup) {
	bookLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByUserID(), nil) // 20 bookings/min per user

	auth := rg.Group("/appointments")
	auth.Use(middleware.Auth(container.GetRedis(), container.GetJWT()))
	{
		auth.POST("", bookLimiter, m.Handler.Book)
		auth.GET("", m.Handler.ListMine)
	}
}
