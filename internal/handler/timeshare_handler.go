package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"timeshare_manager/internal/model"
	"timeshare_manager/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TimeshareHandler handles timeshare related requests
type TimeshareHandler struct {
	service service.TimeshareService
	logger  *zap.Logger
}

// NewTimeshareHandler creates a new TimeshareHandler
func NewTimeshareHandler(s service.TimeshareService, logger *zap.Logger) *TimeshareHandler {
	return &TimeshareHandler{service: s, logger: logger.Named("TimeshareHandler")}
}

func parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID parameter"})
		return 0, false
	}
	return id, true
}

func (h *TimeshareHandler) CreateTimeshare(c *gin.Context) {
	var req model.CreateTimeshareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	timeshare, err := h.service.CreateTimeshare(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to create timeshare", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create timeshare"})
		return
	}
	c.JSON(http.StatusCreated, timeshare)
}

func (h *TimeshareHandler) GetTimeshare(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	timeshare, err := h.service.GetTimeshareByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTimeshareNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to get timeshare", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get timeshare"})
		return
	}
	c.JSON(http.StatusOK, timeshare)
}

func (h *TimeshareHandler) ListTimeshares(c *gin.Context) {
	var filters model.TimeshareFilters
	if placeParam := c.Query("place_id"); placeParam != "" {
		if placeID, err := strconv.Atoi(placeParam); err == nil {
			filters.PlaceID = &placeID
		}
	}
	if statusParam := c.Query("status_id"); statusParam != "" {
		if statusID, err := strconv.Atoi(statusParam); err == nil {
			filters.StatusID = &statusID
		}
	}
	if startParam := c.Query("start_date"); startParam != "" {
		if start, err := time.Parse(time.RFC3339, startParam); err == nil {
			filters.StartDate = &start
		}
	}
	if endParam := c.Query("end_date"); endParam != "" {
		if end, err := time.Parse(time.RFC3339, endParam); err == nil {
			filters.EndDate = &end
		}
	}

	timeshares, err := h.service.GetTimeshares(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list timeshares", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list timeshares"})
		return
	}
	c.JSON(http.StatusOK, timeshares)
}

func (h *TimeshareHandler) UpdateTimeshare(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.UpdateTimeshareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	timeshare, err := h.service.UpdateTimeshare(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTimeshareNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to update timeshare", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update timeshare"})
		}
		return
	}
	c.JSON(http.StatusOK, timeshare)
}

func (h *TimeshareHandler) DeleteTimeshare(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTimeshare(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTimeshareNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to delete timeshare", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete timeshare"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Timeshare deleted"})
}

func (h *TimeshareHandler) CreateStatus(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	status, err := h.service.CreateStatus(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrStatusExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to create status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create status"})
		return
	}
	c.JSON(http.StatusCreated, status)
}

func (h *TimeshareHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.service.GetStatuses(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list statuses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list statuses"})
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// RegisterTimeshareRoutes registers timeshare routes. Reads require
// authentication; writes require admin or owner, except status updates which
// staff may also perform through the generic update endpoint.
func (h *TimeshareHandler) RegisterTimeshareRoutes(rg *gin.RouterGroup, jwtAuthMW, staffMW, adminMW gin.HandlerFunc) {
	timeshares := rg.Group("/timeshares", jwtAuthMW)
	{
		timeshares.GET("", h.ListTimeshares)
		timeshares.GET("/:id", h.GetTimeshare)
		timeshares.POST("", adminMW, h.CreateTimeshare)
		timeshares.PUT("/:id", staffMW, h.UpdateTimeshare)
		timeshares.DELETE("/:id", adminMW, h.DeleteTimeshare)
	}

	statuses := rg.Group("/timeshare-statuses", jwtAuthMW)
	{
		statuses.GET("", h.ListStatuses)
		statuses.POST("", adminMW, h.CreateStatus)
	}
}
