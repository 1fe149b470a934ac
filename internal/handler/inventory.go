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

type InventoryHandler struct {
	inventory *service.InventoryService
	logger    *zap.Logger
}

func NewInventoryHandler(inventory *service.InventoryService, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, logger: logger}
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	response, err := h.inventory.Create(c.Request.Context(), &req, actorIDFromContext(c))
	if err != nil {
		h.logger.Warn("inventory create failed", zap.Error(err))
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to add inventory item", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	response, err := h.inventory.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to fetch inventory item", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *InventoryHandler) List(c *gin.Context) {
	params := constants.ParsePaginationParams(c)
	category := c.Query("category")
	lowStock := c.Query("low_stock") == "true"

	items, total, err := h.inventory.List(c.Request.Context(),
		params.Limit, params.Offset, params.Search, category, lowStock)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to list inventory", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, constants.BuildListResponse(total, params.Page, pageTotal(total, params.Limit), items))
}

// ListExpiring lists stocked batches expiring within the requested window,
// defaulting to 90 days.
func (h *InventoryHandler) ListExpiring(c *gin.Context) {
	withinDays, _ := strconv.Atoi(c.DefaultQuery("within_days", "90"))
	items, err := h.inventory.ListExpiring(c.Request.Context(), withinDays)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to list expiring stock", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	response, err := h.inventory.Update(c.Request.Context(), id, &req, actorIDFromContext(c))
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to update inventory item", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.inventory.Delete(c.Request.Context(), id); err != nil {
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Failed to delete inventory item", apperrors.GetErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Inventory item deleted successfully"))
}

// actorIDFromContext reads the authenticated user id set by the auth
// middleware, for audit columns.
func actorIDFromContext(c *gin.Context) *uint {
	value, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	if id, ok := value.(uint); ok {
		return &id
	}
	return nil
}
