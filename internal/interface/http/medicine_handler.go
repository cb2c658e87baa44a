package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/carebridge-api/internal/domain/repository"
	"github.com/carebridge/carebridge-api/pkg/response"
)

// MedicineHandler serves the pharmacy catalog.
type MedicineHandler struct {
	Repo   repository.MedicineRepository
	Logger *logrus.Logger
}

func NewMedicineHandler(repo repository.MedicineRepository, logger *logrus.Logger) *MedicineHandler {
	return &MedicineHandler{Repo: repo, Logger: logger}
}

func (h *MedicineHandler) List(c *gin.Context) {
	meds, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("medicine list failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to load medicines", nil)
		return
	}
	response.Success(c, http.StatusOK, meds, "medicines", gin.H{"count": len(meds)})
}
