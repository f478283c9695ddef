package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"year-planner/apperr"
)

// requestLogger emits one structured line per request.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

// authRequired rejects requests whose bearer token does not match. It is
// only installed when a token is configured; /health stays open either way.
func authRequired(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if got != token {
			e := apperr.Unauthorized()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"kind": e.Kind, "error": e.Msg})
			return
		}
		c.Next()
	}
}
