package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/carebridge-api/internal/application"
	"github.com/carebridge/carebridge-api/pkg/response"
	"github.com/carebridge/carebridge-api/pkg/validation"
)

// DoctorHandler serves the roster, doctor schedules, and search.
type DoctorHandler struct {
	Doctors      *application.DoctorService
	Appointments *application.AppointmentService
	Logger       *logrus.Logger
}

func NewDoctorHandler(doctors *application.DoctorService, appointments *application.AppointmentService, logger *logrus.Logger) *DoctorHandler {
	return &DoctorHandler{Doctors: doctors, Appointments: appointments, Logger: logger}
}

func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.Doctors.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("doctor list failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to load doctors", nil)
		return
	}
	response.Success(c, http.StatusOK, doctors, "doctors", gin.H{"count": len(doctors)})
}

type doctorAppointmentsRequest struct {
	DoctorID string `json:"doctor_id" binding:"required,uuid"`
}

// AppointmentsForDoctor returns a doctor's schedule joined with patient
// contact fields.
func (h *DoctorHandler) AppointmentsForDoctor(c *gin.Context) {
	var req doctorAppointmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	appts, err := h.Appointments.ListForDoctor(c.Request.Context(), req.DoctorID)
	if err != nil {
		if errors.Is(err, application.ErrDoctorNotFound) {
			response.Error[any](c, http.StatusNotFound, "doctor not found", nil)
			return
		}
		h.Logger.WithError(err).Error("doctor schedule lookup failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to load appointments", nil)
		return
	}
	response.Success(c, http.StatusOK, appts, "appointments", gin.H{"count": len(appts)})
}

func (h *DoctorHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Doctors.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("doctor search failed")
		response.Error[any](c, http.StatusInternalServerError, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits), "query": q})
}
