package external

import (
	"context"
	"time"

	_interface "github.com/sh5080/quickvest-go/pkg/interfaces"
	model "github.com/sh5080/quickvest-go/pkg/types/models"
	"github.com/sh5080/quickvest-go/pkg/utils"
)

const serviceName = "status"

// ServerStatusService samples host load and, when a repository is set,
// writes it as this instance's heartbeat.
type ServerStatusService struct {
	repo    _interface.ServerStatusRepository
	appName string
	version string
	ttl     time.Duration

	sample func() utils.ServerLoad
}

var _ _interface.ServerStatusService = (*ServerStatusService)(nil)

// NewServerStatusService creates the service. repo may be nil.
func NewServerStatusService(repo _interface.ServerStatusRepository, appName, version string, ttl time.Duration) *ServerStatusService {
	return &ServerStatusService{
		repo:    repo,
		appName: appName,
		version: version,
		ttl:     ttl,
		sample:  utils.GetServerLoad,
	}
}

func (s *ServerStatusService) GetServerStatus() *model.ServerStatus {
	load := s.sample()
	now := time.Now()

	return &model.ServerStatus{
		AppName:     s.appName,
		Version:     s.version,
		LastUpdated: now,
		ExpiresAt:   now.Add(s.ttl),

		Load:      load.Load,
		IsHealthy: load.IsHealthy,
		Capacity:  load.Capacity,

		CpuUsage:    load.CpuUsage,
		MemoryUsage: load.MemoryUsage,
	}
}

// UpdateServerStatus refreshes the gauges and stores the heartbeat.
func (s *ServerStatusService) UpdateServerStatus(ctx context.Context) error {
	status := s.GetServerStatus()

	utils.UpdatePrometheusMetrics(s.appName, utils.ServerLoad{
		CpuUsage:    status.CpuUsage,
		MemoryUsage: status.MemoryUsage,
		Load:        status.Load,
		Capacity:    status.Capacity,
		IsHealthy:   status.IsHealthy,
	})

	if s.repo == nil {
		return nil
	}
	return s.repo.UpdateServerStatus(ctx, status)
}

// Run reports every interval until ctx is done. Failures are logged, not returned.
func (s *ServerStatusService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := s.UpdateServerStatus(ctx); err != nil {
			utils.Warn(serviceName, "failed to report server status: %v", err)
		}

		select {
		case <-ctx.Done():
			utils.Info(serviceName, "status reporter stopped")
			return
		case <-ticker.C:
		}
	}
}
