// Package httpapi exposes the carousel service over HTTP.
package httpapi

import (
	"github.com/gin-gonic/gin"

	errx "github.com/exclusive-store/server/internal/core/error"
	logx "github.com/exclusive-store/server/pkg/logger"
)

// jsonError represents a JSON error payload.
type jsonError struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError maps err onto its status and a safe message. Server-side
// failures are logged and their details withheld.
func writeError(c *gin.Context, err error) {
	status := errx.StatusOf(err)
	body := jsonError{Error: errx.MessageOf(err), RequestID: requestID(c)}
	if status < 500 {
		body.Details = err.Error()
	} else {
		logx.Error().Err(err).Str("request_id", body.RequestID).Str("path", c.FullPath()).Msg("request failed")
	}
	c.AbortWithStatusJSON(status, body)
}
