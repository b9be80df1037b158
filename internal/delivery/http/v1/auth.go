package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-tasks/internal/services"
)

type loginRequest struct {
	Password string `json:"password" binding:"required,max=255"`
}

type loginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (h *handlerImpl) HandleLogin(c *gin.Context) {
	var req loginRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	result, err := h.auth.Login(req.Password)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to login")
		switch {
		case errors.Is(err, services.ErrAuthDisabled):
			abort(c, newNotFoundError(services.ErrAuthDisabled.Error()))
		case errors.Is(err, services.ErrPasswordMismatch):
			abort(c, newUnauthorizedError(services.ErrPasswordMismatch.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
	})
}
