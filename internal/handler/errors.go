package handler

import (
	"errors"
	"net/http"

	"github.com/sand1027/careerConnect/internal/model"
	"github.com/sand1027/careerConnect/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError translates service errors to HTTP status codes. Unexpected
// errors are logged and surfaced as a generic 500 so internal details never
// reach the client.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, model.NewErrorResponse(err.Error(), ""))
	case errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrAlreadySaved),
		errors.Is(err, service.ErrAlreadyApplied),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrWrongRole),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
	default:
		log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", ""))
	}
}
