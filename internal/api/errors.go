package api

import (
	"errors"
	"fmt"

	"github.com/fitlog-app/fitlog/internal/tracker"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// getRequestID extracts the request ID from the Fiber context.
// It first checks the requestid middleware local, then falls back to the
// X-Request-ID header.
func getRequestID(c *fiber.Ctx) string {
	if requestID := c.Locals("requestid"); requestID != nil {
		if id, ok := requestID.(string); ok && id != "" {
			return id
		}
	}
	return c.Get("X-Request-ID", "")
}

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// SendError sends a standardized error response with request ID
func SendError(c *fiber.Ctx, statusCode int, errMsg string) error {
	return c.Status(statusCode).JSON(ErrorResponse{
		Error:     errMsg,
		RequestID: getRequestID(c),
	})
}

// handleDomainError maps domain errors to HTTP responses. Validation
// failures carry their message to the caller; store failures are logged
// with the request ID and surface a generic message only.
func handleDomainError(c *fiber.Ctx, err error, operation string) error {
	var verr *tracker.ValidationError
	switch {
	case errors.As(err, &verr):
		return SendError(c, fiber.StatusBadRequest, verr.Message)
	case errors.Is(err, tracker.ErrUserNotFound):
		return SendError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, tracker.ErrUsernameTaken):
		return SendError(c, fiber.StatusConflict, "username already exists")
	default:
		log.Error().
			Err(err).
			Str("operation", operation).
			Str("request_id", getRequestID(c)).
			Msg("Store operation failed")
		return SendError(c, fiber.StatusInternalServerError, fmt.Sprintf("failed to %s", operation))
	}
}
