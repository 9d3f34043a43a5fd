// Package requestlog provides request logging middleware
package requestlog

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID carries the request id in and out
	HeaderRequestID = "X-Request-ID"
	contextKey      = "request_id"
)

// New returns a middleware that tags each request with an id and logs its outcome
func New(l *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(contextKey, requestID)
		c.Header(HeaderRequestID, requestID)

		c.Next()

		status := c.Writer.Status()
		logFn := l.Info
		if status >= 500 {
			logFn = l.Error
		} else if status >= 400 {
			logFn = l.Warn
		}

		fields := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
			"size", c.Writer.Size(),
			"remote_addr", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.Last().Error())
		}
		logFn("Request completed", fields...)
	}
}

// RequestID returns the id assigned by New, or "" outside of it
func RequestID(c *gin.Context) string {
	return c.GetString(contextKey)
}
