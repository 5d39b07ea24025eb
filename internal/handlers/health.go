package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck is one named dependency probe.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthHandler struct {
	checks []HealthCheck
}

func NewHealthHandler(checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (hh *HealthHandler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	result := gin.H{}
	for _, hc := range hh.checks {
		if err := hc.Check(ctx); err != nil {
			status = http.StatusServiceUnavailable
			result[hc.Name] = err.Error()
			continue
		}
		result[hc.Name] = "ok"
	}
	c.JSON(status, gin.H{"status": http.StatusText(status), "checks": result})
}
