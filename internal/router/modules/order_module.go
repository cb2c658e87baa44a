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

// OrderModule places orders and drives the status pipeline.
// Patient: POST /api/orders, GET /api/orders
// Staff: GET /api/orders/all, PATCH /api/orders/:id/status
type OrderModule struct {
	Handler *handlers.OrderHandler
}

func NewOrderModule(svc *application.OrderService, logger *logrus.Logger) *OrderModule {
	return &OrderModule{Handler: handlers.NewOrderHandler(svc, logger)}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	placeLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil)

	auth := rg.Group("/orders")
	auth.Use(middleware.Auth(container.GetRedis(), container.GetJWT()))
	{
		auth.POST("", placeLimiter, m.Handler.Place)
		auth.GET("", m.Handler.ListMine)

		staff := auth.Group("/")
		staff.Use(middleware.RequireStaff())
		{
			staff.GET("/all", m.Handler.ListAll)
			staff.PATCH("/:id/status", m.Handler.UpdateStatus)
		}
	}
}
