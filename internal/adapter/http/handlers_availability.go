package adapthttp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createAvailabilityReq struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// POST /api/availability
func (h *Handler) CreateAvailabilityHandler(c *gin.Context) {
	var req createAvailabilityReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	window, err := h.Availability.Create(c.Request.Context(), currentUserID(c), req.Date, req.StartTime, req.EndTime)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, window)
}

// GET /api/availability
func (h *Handler) ListAvailabilityHandler(c *gin.Context) {
	windows, err := h.Availability.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, windows)
}

// DELETE /api/availability/:id
func (h *Handler) RemoveAvailabilityHandler(c *gin.Context) {
	removed, err := h.Availability.Remove(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
