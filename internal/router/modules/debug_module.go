package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carebridge/carebridge-api/internal/container"
	"github.com/carebridge/carebridge-api/internal/interface/middleware"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// expvar metrics, limited per IP with a private-network bypass
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
