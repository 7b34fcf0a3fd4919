package realtime

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Invalidate publishes key after every successful mutating request in the
// group it is attached to.
func Invalidate(h *Hub, key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if h == nil || c.Request.Method == http.MethodGet || c.Request.Method == http.MethodOptions {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		h.Publish(Event{Key: key, Method: c.Request.Method, Path: c.Request.URL.Path})
	}
}
