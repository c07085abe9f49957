package adapthttp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schedlink/internal/app"
)

type bookSlotReq struct {
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	VisitorName  string `json:"visitor_name" binding:"required"`
	VisitorEmail string `json:"visitor_email" binding:"required,email"`
}

// POST /links/:slug/bookings
func (h *Handler) BookSlotHandler(c *gin.Context) {
	var req bookSlotReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	booking, err := h.Bookings.BookSlot(c.Request.Context(), app.BookSlotRequest{
		Slug:         c.Param("slug"),
		Date:         req.Date,
		StartTime:    req.StartTime,
		VisitorName:  req.VisitorName,
		VisitorEmail: req.VisitorEmail,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}
