package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	logx "github.com/exclusive-store/server/pkg/logger"
)

// RequestIDHeader carries the request id in and out of the service.
const RequestIDHeader = "X-Request-Id"

const requestIDKey = "request_id"

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// WithRequestID reuses an incoming request id or assigns a new one.
func WithRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// WithLogging writes one access log line per request.
func WithLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logx.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Float64("latency_ms", float64(time.Since(start).Microseconds())/1000.0).
			Str("request_id", requestID(c)).
			Msg("http_request")
	}
}
