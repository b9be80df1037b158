package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	if !h.auth.Enabled() {
		c.Next()
		return
	}

	const authHeader = "Authorization"
	header := c.GetHeader(authHeader)
	if header == "" {
		h.logger.Error().Msg("authorization header required")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	const bearerPrefix = "Bearer"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerPrefix {
		h.logger.Error().Msg("invalid authorization header")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	_, err := h.auth.ParseToken(parts[1])
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to parse token")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	c.Next()
}
