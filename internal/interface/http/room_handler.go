package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/carebridge-api/internal/application"
	"github.com/carebridge/carebridge-api/pkg/response"
	"github.com/carebridge/carebridge-api/pkg/validation"
	"github.com/carebridge/carebridge-api/pkg/video"
)

// RoomHandler issues credentials for joining video-consultation rooms.
type RoomHandler struct {
	Svc    *application.RoomService
	Logger *logrus.Logger
}

func NewRoomHandler(svc *application.RoomService, logger *logrus.Logger) *RoomHandler {
	return &RoomHandler{Svc: svc, Logger: logger}
}

type roomTokenRequest struct {
	AppointmentID string `json:"appointment_id" binding:"required,uuid"`
}

func (h *RoomHandler) Token(c *gin.Context) {
	var req roomTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	creds, err := h.Svc.Join(c.Request.Context(), c.GetString("userID"), req.AppointmentID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrApptNotFound):
			response.Error[any](c, http.StatusNotFound, "appointment not found", nil)
		case errors.Is(err, application.ErrNotParticipant):
			response.Error[any](c, http.StatusForbidden, "not your appointment", nil)
		case errors.Is(err, application.ErrNotVideoCall):
			response.Error[any](c, http.StatusBadRequest, "appointment is not a video call", nil)
		case errors.Is(err, video.ErrNotConfigured):
			response.Error[any](c, http.StatusServiceUnavailable, "video rooms not configured", nil)
		default:
			h.Logger.WithError(err).Error("room token failed")
			response.Error[any](c, http.StatusInternalServerError, "failed to issue room token", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, creds, "room token issued", nil)
}
