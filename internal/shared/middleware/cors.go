package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// knownOrigins are the portfolio and admin frontends. When the CORS toggle
// is on (staging, previews) any origin is accepted instead.
var knownOrigins = map[string]bool{
	"http://localhost:5173": true,
	"http://localhost:5174": true,
}

// CORS reflects allowed origins. allowAll corresponds to APP_ENABLE_CORS.
func CORS(allowAll bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		switch {
		case allowAll:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case knownOrigins[origin]:
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
