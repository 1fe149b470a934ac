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

type EmployeeHandler struct {
	employees *service.EmployeeService
	logger    *zap.Logger
}

func NewEmployeeHandler(employees *service.EmployeeService, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, logger: logger}
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	response, err := h.employees.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Warn("employee create failed", zap.Error(err))
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to register employee", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusCreated, response)
}

// Get accepts either the numeric surrogate ID or the EMP business code.
func (h *EmployeeHandler) Get(c *gin.Context) {
	param := c.Param("id")
	id, perr := strconv.ParseUint(param, 10, 32)

	var response *dto.EmployeeResponse
	var err error
	if perr == nil {
		response, err = h.employees.Get(c.Request.Context(), uint(id))
	} else {
		response, err = h.employees.GetByCode(c.Request.Context(), param)
	}
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to fetch employee", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *EmployeeHandler) List(c *gin.Context) {
	params := constants.ParsePaginationParams(c)
	role := c.Query("role")
	department := c.Query("department")
	status := c.Query("status")

	employees, total, err := h.employees.List(c.Request.Context(),
		params.Limit, params.Offset, role, department, status, params.Search)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to list employees", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, constants.BuildListResponse(total, params.Page, pageTotal(total, params.Limit), employees))
}

// ListDoctors serves the booking UI's doctor picker.
func (h *EmployeeHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.employees.ListDoctors(c.Request.Context(), c.Query("department"))
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to list doctors", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": doctors})
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	response, err := h.employees.Update(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to update employee", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.employees.Delete(c.Request.Context(), id); err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to delete employee", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Employee deleted successfully"))
}
