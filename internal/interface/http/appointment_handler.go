package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/carebridge-api/internal/application"
	"github.com/carebridge/carebridge-api/pkg/response"
	"github.com/carebridge/carebridge-api/pkg/validation"
)

// AppointmentHandler books consultations and lists the caller's agenda.
type AppointmentHandler struct {
	Svc    *application.AppointmentService
	Logger *logrus.Logger
}

func NewAppointmentHandler(svc *application.AppointmentService, logger *logrus.Logger) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc, Logger: logger}
}

type bookRequest struct {
	DoctorID string `json:"doctor_id" binding:"required,uuid"`
	Date     string `json:"date" binding:"required"`
	Type     string `json:"type" binding:"required,oneof='Video Call' 'Chat' 'In-Person'"`
}

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"date": "must be an RFC3339 timestamp"})
		return
	}

	detail, err := h.Svc.Book(c.Request.Context(), application.BookInput{
		UserID:   c.GetString("userID"),
		DoctorID: req.DoctorID,
		Date:     date,
		Type:     req.Type,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidType):
			response.Error[any](c, http.StatusBadRequest, "invalid appointment type", nil)
		case errors.Is(err, application.ErrDoctorNotFound):
			response.Error[any](c, http.StatusNotFound, "doctor not found", nil)
		case errors.Is(err, application.ErrUserNotFound):
			response.Error[any](c, http.StatusUnauthorized, "account no longer exists", nil)
		case errors.Is(err, application.ErrSlotTaken):
			response.Error[any](c, http.StatusConflict, "time slot already booked", nil)
		default:
			h.Logger.WithError(err).Error("booking failed")
			response.Error[any](c, http.StatusInternalServerError, "failed to book appointment", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, detail, "appointment booked", nil)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	appts, err := h.Svc.ListForUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.Logger.WithError(err).Error("appointment list failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to load appointments", nil)
		return
	}
	response.Success(c, http.StatusOK, appts, "appointments", gin.H{"count": len(appts)})
}
