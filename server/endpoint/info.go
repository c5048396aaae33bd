package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/airelay/version"
)

// startTime records when the process started for uptime calculation.
var startTime = time.Now()

// ProviderLister returns the names of the configured providers.
type ProviderLister func() []string

// Info reports build information and the configured providers.
func Info(serviceName string, providers ProviderLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		v := version.Get()
		var names []string
		if providers != nil {
			names = providers()
		}
		c.JSON(http.StatusOK, gin.H{
			"service":    serviceName,
			"version":    v.Version,
			"commit":     v.Commit,
			"build_time": v.BuildTime,
			"go_version": v.GoVersion,
			"is_release": v.IsRelease(),
			"providers":  names,
			"uptime":     time.Since(startTime).Round(time.Second).String(),
		})
	}
}
