package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/carebridge-api/internal/application"
	"github.com/carebridge/carebridge-api/pkg/response"
	"github.com/carebridge/carebridge-api/pkg/validation"
)

// OrderHandler places medicine orders and drives the status pipeline.
type OrderHandler struct {
	Svc    *application.OrderService
	Logger *logrus.Logger
}

func NewOrderHandler(svc *application.OrderService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

type placeOrderRequest struct {
	MedicineID string `json:"medicine_id" binding:"required,uuid"`
	Quantity   int    `json:"quantity" binding:"required,gte=1"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Processing Delivered Cancelled"`
}

func (h *OrderHandler) Place(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	detail, err := h.Svc.Place(c.Request.Context(), application.PlaceOrderInput{
		UserID:     c.GetString("userID"),
		MedicineID: req.MedicineID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidQuantity):
			response.Error[any](c, http.StatusBadRequest, "quantity must be at least 1", nil)
		case errors.Is(err, application.ErrMedicineNotFound):
			response.Error[any](c, http.StatusNotFound, "medicine not found", nil)
		default:
			h.Logger.WithError(err).Error("order placement failed")
			response.Error[any](c, http.StatusInternalServerError, "failed to place order", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, detail, "order placed", nil)
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.Svc.ListForUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.Logger.WithError(err).Error("order list failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to load orders", nil)
		return
	}
	response.Success(c, http.StatusOK, orders, "orders", gin.H{"count": len(orders)})
}

// ListAll is the staff dashboard feed across every account.
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("order dashboard failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to load orders", nil)
		return
	}
	response.Success(c, http.StatusOK, orders, "orders", gin.H{"count": len(orders)})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	order, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidStatus):
			response.Error[any](c, http.StatusBadRequest, "unknown order status", nil)
		case errors.Is(err, application.ErrOrderNotFound):
			response.Error[any](c, http.StatusNotFound, "order not found", nil)
		case errors.Is(err, application.ErrBadTransition):
			response.Error[any](c, http.StatusConflict, "status transition not allowed", nil)
		default:
			h.Logger.WithError(err).Error("status update failed")
			response.Error[any](c, http.StatusInternalServerError, "failed to update order", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, order, "order status updated", nil)
}
