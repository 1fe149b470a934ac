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

type PatientHandler struct {
	patients *service.PatientService
	logger   *zap.Logger
}

func NewPatientHandler(patients *service.PatientService, logger *zap.Logger) *PatientHandler {
	return &PatientHandler{patients: patients, logger: logger}
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req dto.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	response, err := h.patients.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Warn("patient create failed", zap.Error(err))
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to register patient", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	response, err := h.patients.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to fetch patient", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *PatientHandler) List(c *gin.Context) {
	params := constants.ParsePaginationParams(c)
	patients, total, err := h.patients.List(c.Request.Context(), params.Limit, params.Offset, params.Search)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to list patients", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, constants.BuildListResponse(total, params.Page, pageTotal(total, params.Limit), patients))
}

func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	response, err := h.patients.Update(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to update patient", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.patients.Delete(c.Request.Context(), id); err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to delete patient", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Patient deleted successfully"))
}

func (h *PatientHandler) Stats(c *gin.Context) {
	stats, err := h.patients.Stats(c.Request.Context())
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to compute patient stats", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, stats)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid id parameter", nil))
		return 0, false
	}
	return uint(id), true
}

func pageTotal(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
