package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Run serves the router on addr until the listener fails.
func Run(router *gin.Engine, addr string) error {
	if err := router.Run(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
