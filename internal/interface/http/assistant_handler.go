package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carebridge/carebridge-api/pkg/response"
)

// AssistantHandler exposes the chat-widget embed configuration so the
// frontend does not hardcode it.
type AssistantHandler struct {
	EmbedID string
}

func NewAssistantHandler(embedID string) *AssistantHandler {
	return &AssistantHandler{EmbedID: embedID}
}

func (h *AssistantHandler) Config(c *gin.Context) {
	response.Success[any](c, http.StatusOK, gin.H{
		"enabled":  h.EmbedID != "",
		"embed_id": h.EmbedID,
	}, "assistant config", nil)
}
