package middleware

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with a unique id, reusing the caller's
// X-Request-ID when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// RequestLogger logs one line per request with method, path, status and
// duration.
func RequestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		event := lgr.Info()
		if c.Writer.Status() >= 500 {
			event = lgr.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("requestID", c.GetString("requestID")).
			Str("clientIP", c.ClientIP()).
			Msg("Request handled")
	}
}

// RecoveryHandler returns a gin.RecoveryFunc that reports the panic to
// Sentry (when initialized) and logs it before the 500 response.
func RecoveryHandler(lgr zerolog.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered interface{}) {
		if hub := sentry.CurrentHub(); hub.Client() != nil {
			hub.Recover(recovered)
		}
		lgr.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		c.AbortWithStatus(500)
	}
}
