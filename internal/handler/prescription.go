package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/medicore-health/hms/internal/constants"
	"github.com/medicore-health/hms/internal/dto"
	apperrors "github.com/medicore-health/hms/internal/errors"
	"github.com/medicore-health/hms/internal/service"
	"go.uber.org/zap"
)

type PrescriptionHandler struct {
	prescriptions *service.PrescriptionService
	logger        *zap.Logger
}

func NewPrescriptionHandler(prescriptions *service.PrescriptionService, logger *zap.Logger) *PrescriptionHandler {
	return &PrescriptionHandler{prescriptions: prescriptions, logger: logger}
}

func (h *PrescriptionHandler) Create(c *gin.Context) {
	var req dto.CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	response, err := h.prescriptions.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Warn("prescription create failed", zap.Error(err))
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to create prescription", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (h *PrescriptionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	response, err := h.prescriptions.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to fetch prescription", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *PrescriptionHandler) GetByAppointment(c *gin.Context) {
	appointmentID, err := strconv.ParseUint(c.Param("appointmentId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid appointment id", nil))
		return
	}
	response, serr := h.prescriptions.GetByAppointment(c.Request.Context(), uint(appointmentID))
	if serr != nil {
		c.JSON(apperrors.ToHTTPStatus(serr),
			constants.BuildErrorResponse("Failed to fetch prescription", apperrors.GetErrorMessage(serr)))
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *PrescriptionHandler) List(c *gin.Context) {
	params := constants.ParsePaginationParams(c)
	patientID, _ := strconv.ParseUint(c.Query("patient_id"), 10, 32)
	doctorID, _ := strconv.ParseUint(c.Query("doctor_id"), 10, 32)
	status := c.Query("status")

	prescriptions, total, err := h.prescriptions.List(c.Request.Context(),
		params.Limit, params.Offset, uint(patientID), uint(doctorID), status)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to list prescriptions", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, constants.BuildListResponse(total, params.Page, pageTotal(total, params.Limit), prescriptions))
}

func (h *PrescriptionHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	response, err := h.prescriptions.Update(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to update prescription", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *PrescriptionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.prescriptions.Delete(c.Request.Context(), id); err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to delete prescription", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Prescription deleted successfully"))
}
