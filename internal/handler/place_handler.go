package handler

import (
	"errors"
	"net/http"

	"timeshare_manager/internal/model"
	"timeshare_manager/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlaceHandler handles place and room related requests
type PlaceHandler struct {
	service service.PlaceService
	logger  *zap.Logger
}

// NewPlaceHandler creates a new PlaceHandler
func NewPlaceHandler(s service.PlaceService, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{service: s, logger: logger.Named("PlaceHandler")}
}

func (h *PlaceHandler) CreatePlace(c *gin.Context) {
	var req model.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	place, err := h.service.CreatePlace(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed to create place", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create place"})
		return
	}
	c.JSON(http.StatusCreated, place)
}

func (h *PlaceHandler) GetPlace(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	place, err := h.service.GetPlaceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to get place", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get place"})
		return
	}
	c.JSON(http.StatusOK, place)
}

func (h *PlaceHandler) ListPlaces(c *gin.Context) {
	places, err := h.service.GetPlaces(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list places", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list places"})
		return
	}
	c.JSON(http.StatusOK, places)
}

func (h *PlaceHandler) UpdatePlace(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	place, err := h.service.UpdatePlace(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrPlaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to update place", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update place"})
		return
	}
	c.JSON(http.StatusOK, place)
}

func (h *PlaceHandler) DeletePlace(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeletePlace(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPlaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to delete place", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete place"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Place deleted"})
}

func (h *PlaceHandler) CreateRoom(c *gin.Context) {
	var req model.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrPlaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to create room", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room"})
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (h *PlaceHandler) ListRoomsByPlace(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rooms, err := h.service.GetRoomsByPlace(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to list rooms", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rooms"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *PlaceHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to update room", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update room"})
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *PlaceHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteRoom(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to delete room", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}

// RegisterPlaceRoutes registers place and room routes
func (h *PlaceHandler) RegisterPlaceRoutes(rg *gin.RouterGroup, jwtAuthMW, adminMW gin.HandlerFunc) {
	places := rg.Group("/places", jwtAuthMW)
	{
		places.GET("", h.ListPlaces)
		places.GET("/:id", h.GetPlace)
		places.GET("/:id/rooms", h.ListRoomsByPlace)
		places.POST("", adminMW, h.CreatePlace)
		places.PUT("/:id", adminMW, h.UpdatePlace)
		places.DELETE("/:id", adminMW, h.DeletePlace)
	}

	rooms := rg.Group("/rooms", jwtAuthMW)
	{
		rooms.POST("", adminMW, h.CreateRoom)
		rooms.PUT("/:id", adminMW, h.UpdateRoom)
		rooms.DELETE("/:id", adminMW, h.DeleteRoom)
	}
}
