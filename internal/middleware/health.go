package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthStatus struct {
	Status      string    `json:"status"`
	Database    string    `json:"database"`
	LastChecked time.Time `json:"last_checked"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
}

// HealthChecker reports liveness plus database reachability. Results are cached
// for cacheDuration so probes do not hammer the pool.
type HealthChecker struct {
	mu            sync.Mutex
	ping          func(ctx context.Context) error
	version       string
	startTime     time.Time
	cacheDuration time.Duration
	last          *HealthStatus
	logger        *zap.Logger
}

func NewHealthChecker(ping func(ctx context.Context) error, version string, logger *zap.Logger) *HealthChecker {
	return &HealthChecker{
		ping:          ping,
		version:       version,
		startTime:     time.Now(),
		cacheDuration: 5 * time.Second,
		logger:        logger,
	}
}

func (h *HealthChecker) HealthCheckMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := h.check(c.Request.Context())

		code := http.StatusOK
		if status.Status != "ok" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	}
}

func (h *HealthChecker) check(ctx context.Context) HealthStatus {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := time.Now()
	if h.last != nil && now.Sub(h.last.LastChecked) < h.cacheDuration {
		return *h.last
	}

	status := HealthStatus{
		Status:      "ok",
		Database:    "up",
		LastChecked: now,
		Uptime:      now.Sub(h.startTime).Round(time.Second).String(),
		Version:     h.version,
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := h.ping(pingCtx); err != nil {
		h.logger.Warn("Health check database ping failed", zap.Error(err))
		status.Status = "degraded"
		status.Database = "down"
	}

	h.last = &status
	return status
}
