package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/carebridge-api/internal/container"
	"github.com/carebridge/carebridge-api/internal/domain/repository"
	handlers "github.com/carebridge/carebridge-api/internal/interface/http"
	"github.com/carebridge/carebridge-api/internal/interface/middleware"
)

// MedicineModule serves the pharmacy catalog.
type MedicineModule struct {
	Handler *handlers.MedicineHandler
}

func NewMedicineModule(repo repository.MedicineRepository, logger *logrus.Logger) *MedicineModule {
	return &MedicineModule{Handler: handlers.NewMedicineHandler(repo, logger)}
}

func (m *MedicineModule) Register(rg *gin.RouterGroup) {
	// Public catalog, limited per IP.
	rl := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/medicines", rl, m.Handler.List)
}
