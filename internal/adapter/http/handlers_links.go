package adapthttp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// POST /api/links
func (h *Handler) CreateLinkHandler(c *gin.Context) {
	link, err := h.Links.Create(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// GET /api/links
func (h *Handler) ListLinksHandler(c *gin.Context) {
	links, err := h.Links.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// DELETE /api/links/:id
func (h *Handler) DeactivateLinkHandler(c *gin.Context) {
	deactivated, err := h.Links.Deactivate(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deactivated": deactivated})
}

// GET /links/:slug/slots?date=YYYY-MM-DD
func (h *Handler) GetSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date required (YYYY-MM-DD)"})
		return
	}
	slots, err := h.Links.AvailableSlots(c.Request.Context(), c.Param("slug"), date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}
