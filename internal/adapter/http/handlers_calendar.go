package adapthttp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/calendar/auth
func (h *Handler) CalendarAuthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"auth_url": h.Calendar.AuthURL(currentUserID(c))})
}

// GET /oauth2callback
func (h *Handler) CalendarCallbackHandler(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "authorization code required"})
		return
	}
	if err := h.Calendar.HandleCallback(c.Request.Context(), code, c.Query("state")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "calendar connected"})
}

// GET /api/calendar/events?date=YYYY-MM-DD
func (h *Handler) CalendarEventsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date required (YYYY-MM-DD)"})
		return
	}
	events, err := h.Calendar.EventsForDay(c.Request.Context(), currentUserID(c), date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}
