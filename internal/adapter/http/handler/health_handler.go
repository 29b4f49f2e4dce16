package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"wellness-dispatch/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

type dependencyHealth struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. Dependencies are pinged concurrently, each
// bounded by healthCheckTimeout; any failure answers 503 "degraded".
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		results := make([]dependencyHealth, len(checkers))

		var wg sync.WaitGroup
		for i, checker := range checkers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
				defer cancel()

				start := time.Now()
				err := checker.Ping(ctx)
				results[i] = dependencyHealth{Status: "up", LatencyMS: time.Since(start).Milliseconds()}
				if err != nil {
					results[i].Status = "down"
					results[i].Error = err.Error()
				}
			}()
		}
		wg.Wait()

		deps := make(map[string]dependencyHealth, len(checkers))
		status, code := "healthy", http.StatusOK
		for i, checker := range checkers {
			deps[checker.Name()] = results[i]
			if results[i].Status != "up" {
				status, code = "degraded", http.StatusServiceUnavailable
			}
		}

		c.JSON(code, gin.H{
			"status":       status,
			"dependencies": deps,
			"time":         time.Now().UTC().Format(time.RFC3339),
		})
	}
}
