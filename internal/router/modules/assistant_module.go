package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carebridge/carebridge-api/internal/container"
	handlers "github.com/carebridge/carebridge-api/internal/interface/http"
	"github.com/carebridge/carebridge-api/internal/interface/middleware"
)

// AssistantModule exposes the chat-widget embed config. Public so the
// landing page can render the widget before sign-in.
type AssistantModule struct {
	Handler *handlers.AssistantHandler
}

func NewAssistantModule(embedID string) *AssistantModule {
	return &AssistantModule{Handler: handlers.NewAssistantHandler(embedID)}
}

func (m *AssistantModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/assistant/config", rl, m.Handler.Config)
}
