package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

// HealthService reports liveness and document store readiness.
type HealthService struct {
	store   store.DocumentStore
	version string
	started time.Time
}

func NewHealthService(s store.DocumentStore, version string) *HealthService {
	return &HealthService{
		store:   s,
		version: version,
		started: time.Now(),
	}
}

// CheckHealth probes the document store with a point read. A not-found
// answer proves the store is reachable.
func (s *HealthService) CheckHealth(ctx context.Context) types.HealthStatus {
	status := types.HealthStatus{
		Status:  "ok",
		Version: s.version,
		Uptime:  time.Since(s.started).Round(time.Second).String(),
	}

	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	_, err := s.store.Get(probeCtx, "health:probe")
	if err != nil && !stderrors.Is(err, store.ErrNotFound) {
		status.Status = "degraded"
		status.StoreError = err.Error()
	}
	return status
}
