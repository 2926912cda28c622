package handlers

import (
	"errors"
	"net/http"

	"adsgenie-backend/internal/models"
	"adsgenie-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// writeError renders a workflow error as models.ErrorResponse with the
// status matching its kind.
func writeError(c *gin.Context, err error) {
	kind := services.KindOf(err)

	message := "internal error"
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}

	c.JSON(statusFor(kind), models.ErrorResponse{
		Error:   string(kind),
		Message: message,
	})
}

func statusFor(kind services.Kind) int {
	switch kind {
	case services.KindUnauthenticated:
		return http.StatusUnauthorized
	case services.KindInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
