// Package adapthttp binds the services to a gin router.
package adapthttp

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"schedlink/internal/app"
)

// Handler carries every service the routes need.
type Handler struct {
	Auth         *app.AuthService
	Availability *app.AvailabilityService
	Links        *app.LinkService
	Bookings     *app.BookingService
	Calendar     *app.CalendarService // nil when OAuth is not configured
	Log          *zap.Logger
}

// NewRouter wires all routes. Visitor-facing endpoints (slot listing,
// booking) are public; owner endpoints sit behind the bearer-token
// middleware.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(h.Log))

	router.POST("/auth/register", h.RegisterHandler)
	router.POST("/auth/login", h.LoginHandler)

	router.GET("/links/:slug/slots", h.GetSlotsHandler)
	router.POST("/links/:slug/bookings", h.BookSlotHandler)

	if h.Calendar != nil {
		// OAuth callback must stay outside the auth group.
		router.GET("/oauth2callback", h.CalendarCallbackHandler)
	}

	api := router.Group("/api")
	api.Use(authRequired(h.Auth))
	{
		api.POST("/availability", h.CreateAvailabilityHandler)
		api.GET("/availability", h.ListAvailabilityHandler)
		api.DELETE("/availability/:id", h.RemoveAvailabilityHandler)

		api.POST("/links", h.CreateLinkHandler)
		api.GET("/links", h.ListLinksHandler)
		api.DELETE("/links/:id", h.DeactivateLinkHandler)

		if h.Calendar != nil {
			api.GET("/calendar/auth", h.CalendarAuthHandler)
			api.GET("/calendar/events", h.CalendarEventsHandler)
		}
	}

	return router
}
