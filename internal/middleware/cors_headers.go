package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// EchoRequestHeaders answers a CORS preflight's Access-Control-Request-Headers
// by allowing exactly those headers. A "*" allow-list is only a wildcard for
// requests without credentials, so credentialed clients need the echo.
// Register it before the CORS middleware, which aborts preflights.
func EchoRequestHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions && c.GetHeader("Origin") != "" {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}
		c.Next()
	}
}
