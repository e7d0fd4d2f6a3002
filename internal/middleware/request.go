package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"item-service/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propagates X-Request-ID, generating one when absent, and stores it
// in the request context for logging.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Timeout bounds the request context by the configured deadline.
func (mw Middleware) Timeout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.requestTimeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), mw.requestTimeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
