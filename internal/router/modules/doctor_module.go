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

// DoctorModule serves the roster, per-doctor schedules, and search.
// The roster is public; schedules and search require a session.
type DoctorModule struct {
	Handler *handlers.DoctorHandler
}

func NewDoctorModule(doctors *application.DoctorService, appointments *application.AppointmentService, logger *logrus.Logger) *DoctorModule {
	return &DoctorModule{Handler: handlers.NewDoctorHandler(doctors, appointments, logger)}
}

func (m *DoctorModule) Register(rg *gin.RouterGroup) {
	listLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/doctors", listLimiter, m.Handler.List)

	auth := rg.Group("/doctors")
	auth.Use(middleware.Auth(container.GetRedis(), container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/appointments", m.Handler.AppointmentsForDoctor)
		auth.GET("/search", m.Handler.Search)
	}
}
