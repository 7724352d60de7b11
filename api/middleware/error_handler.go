// api/middleware/error_handler.go
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Annany2002/querygate/api/models"
	"github.com/Annany2002/querygate/internal/auth"
	"github.com/Annany2002/querygate/internal/gateway"
	"github.com/Annany2002/querygate/internal/logger"
)

var (
	customLog = logger.NewLogger()
)

// ErrorHandler creates a Gin middleware for centralized error handling.
// Handlers attach errors with c.Error and return; the last one decides the response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		entry := customLog.WithField("request_id", c.GetString(RequestIDKey))

		var statusCode int
		var userMessage string

		switch {
		case errors.Is(err, gateway.ErrInputRequired):
			statusCode = http.StatusBadRequest
			userMessage = models.MsgInputRequired
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				for _, fe := range validationErrs {
					entry.Infof("Validation Error: Field %s failed on %s", fe.Field(), fe.Tag())
				}
			}
		case errors.Is(err, gateway.ErrNotSelect):
			statusCode = http.StatusBadRequest
			userMessage = models.MsgNotSelect
			entry.Warnf("Rejected generated query: %v", err)
		case errors.Is(err, auth.ErrTokenExpired):
			statusCode = http.StatusUnauthorized
			userMessage = "Authentication token has expired."
		case errors.Is(err, auth.ErrUnauthorized),
			errors.Is(err, auth.ErrTokenMalformed),
			errors.Is(err, auth.ErrTokenInvalid),
			errors.Is(err, auth.ErrTokenClaimsInvalid),
			errors.Is(err, auth.ErrUnexpectedSigningMethod):
			statusCode = http.StatusUnauthorized
			userMessage = "Invalid or malformed authentication token."
		default:
			// Oracle and database failures alike: log the detail, return nothing of it.
			statusCode = http.StatusInternalServerError
			userMessage = models.MsgProcessFailed
			entry.Errorf("Error processing request: %v", err)
		}

		if !c.Writer.Written() {
			c.AbortWithStatusJSON(statusCode, models.ErrorResponse{Error: userMessage})
		} else {
			entry.Warn("[ErrorHandler] Response already written before handling error.")
		}
	}
}
