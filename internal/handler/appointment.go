package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medicore-health/hms/internal/constants"
	"github.com/medicore-health/hms/internal/dto"
	apperrors "github.com/medicore-health/hms/internal/errors"
	"github.com/medicore-health/hms/internal/service"
	"go.uber.org/zap"
)

type AppointmentHandler struct {
	appointments *service.AppointmentService
	logger       *zap.Logger
}

func NewAppointmentHandler(appointments *service.AppointmentService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments, logger: logger}
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	response, err := h.appointments.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Warn("appointment create failed", zap.Error(err))
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to book appointment", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	response, err := h.appointments.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to fetch appointment", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	params := constants.ParsePaginationParams(c)
	var filter dto.AppointmentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid filter parameters", err.Error()))
		return
	}

	appointments, total, err := h.appointments.List(c.Request.Context(), params.Limit, params.Offset, &filter)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to list appointments", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, constants.BuildListResponse(total, params.Page, pageTotal(total, params.Limit), appointments))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	response, err := h.appointments.Update(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to update appointment", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.appointments.Cancel(c.Request.Context(), id); err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to cancel appointment", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Appointment cancelled"))
}
