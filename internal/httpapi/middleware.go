package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/briefcast/internal/logger"
)

func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		msg := "%s %s -> %d (%s)"
		args := []any{c.Request.Method, c.Request.URL.Path, status, time.Since(start)}
		switch {
		case status >= 500:
			log.Error(c.Request.Context(), msg, args...)
		case status >= 400:
			log.Warn(c.Request.Context(), msg, args...)
		default:
			log.Debug(c.Request.Context(), msg, args...)
		}
	}
}
