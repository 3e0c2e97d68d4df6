package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"petcare-backend-go/internal/core"
	"petcare-backend-go/internal/models"
)

// RoomHandler handles room management endpoints.
type RoomHandler struct {
	roomService core.RoomService
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(rs core.RoomService) *RoomHandler {
	return &RoomHandler{roomService: rs}
}

// clinicScope resolves the clinic a room request targets. Clinic-scoped
// staff are pinned to their own clinic regardless of the query parameter;
// everyone else (admin, boarding, training) passes ?clinic=N, defaulting
// to 1.
func clinicScope(c *gin.Context) (int, bool) {
	viewer, ok := viewerFrom(c)
	if !ok {
		return 0, false
	}
	if n := viewer.Role.Clinic(); n != 0 {
		return n, true
	}
	clinic, err := strconv.Atoi(c.DefaultQuery("clinic", "1"))
	if err != nil || clinic <= 0 {
		return 0, false
	}
	return clinic, true
}

// List handles GET /api/v1/rooms.
func (h *RoomHandler) List(c *gin.Context) {
	clinic, ok := clinicScope(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid clinic scope"})
		return
	}

	rooms, err := h.roomService.List(c.Request.Context(), clinic)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if rooms == nil {
		rooms = []*models.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}

// Seed handles POST /api/v1/rooms/seed: creates the fixed initial room set
// for the clinic.
func (h *RoomHandler) Seed(c *gin.Context) {
	clinic, ok := clinicScope(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid clinic scope"})
		return
	}

	rooms, err := h.roomService.Seed(c.Request.Context(), clinic)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// SetStatus handles PUT /api/v1/rooms/:label/status.
func (h *RoomHandler) SetStatus(c *gin.Context) {
	clinic, ok := clinicScope(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid clinic scope"})
		return
	}

	var req models.SetRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid room status payload", Details: err.Error()})
		return
	}

	room, err := h.roomService.SetStatus(c.Request.Context(), clinic, c.Param("label"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// SetImage handles PUT /api/v1/rooms/:label/image.
func (h *RoomHandler) SetImage(c *gin.Context) {
	clinic, ok := clinicScope(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid clinic scope"})
		return
	}

	var req models.SetRoomImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid room image payload", Details: err.Error()})
		return
	}

	room, err := h.roomService.SetImage(c.Request.Context(), clinic, c.Param("label"), req.Image, req.ImageContentType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /api/v1/rooms/:label.
func (h *RoomHandler) Delete(c *gin.Context) {
	clinic, ok := clinicScope(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid clinic scope"})
		return
	}

	if err := h.roomService.Delete(c.Request.Context(), clinic, c.Param("label")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Room deleted"})
}
