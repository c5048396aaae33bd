package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/airelay/observability"
)

// Observe opens a span per request and records request metrics. A nil
// metrics value records spans only.
func Observe(serviceName string, metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		oc := observability.NewOperationContext(serviceName, c.Request.Method, route, c.GetString(RequestIDKey), metrics)
		ctx := observability.WithOperationContext(c.Request.Context(), oc)
		ctx, span := oc.StartSpanForOperation(ctx, "HTTP "+c.Request.Method+" "+route)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		var err error
		if last := c.Errors.Last(); last != nil {
			err = last.Err
		}
		oc.EndOperation(ctx, span, c.Writer.Status(), err)
	}
}
