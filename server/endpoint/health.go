package endpoint

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/airelay/observability"
	"github.com/kbukum/airelay/version"
)

// HealthChecker returns the health of each provider.
type HealthChecker func(ctx context.Context) []observability.Health

// Health reports the service as up, degraded or down from its providers.
// A provider without a credential is degraded, which still answers 200 so
// the UI can start and show which features are unavailable.
func Health(serviceName string, checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		sh := observability.NewServiceHealth(serviceName, version.Get().Short())
		if checker != nil {
			for _, h := range checker(c.Request.Context()) {
				sh.AddComponent(h)
			}
		}

		status := http.StatusOK
		if sh.Status == observability.HealthStatusDown {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, sh)
	}
}
