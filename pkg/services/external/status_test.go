package external

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	model "github.com/sh5080/quickvest-go/pkg/types/models"
	"github.com/sh5080/quickvest-go/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu       sync.Mutex
	statuses []*model.ServerStatus
	err      error
}

func (f *fakeRepo) UpdateServerStatus(ctx context.Context, status *model.ServerStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, status)
	return f.err
}

func (f *fakeRepo) GetServerStatus(ctx context.Context, appName string) (*model.ServerStatus, error) {
	return nil, nil
}

func (f *fakeRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.statuses)
}

func fixedLoad() utils.ServerLoad {
	return utils.ComputeServerLoad(0.5, 0.5)
}

func TestGetServerStatus(t *testing.T) {
	svc := NewServerStatusService(nil, "quickvest-onboarding", "1.2.3", time.Minute)
	svc.sample = fixedLoad

	status := svc.GetServerStatus()
	assert.Equal(t, "quickvest-onboarding", status.AppName)
	assert.Equal(t, "1.2.3", status.Version)
	assert.InDelta(t, 0.5, status.Load, 1e-9)
	assert.InDelta(t, 0.5, status.Capacity, 1e-9)
	assert.True(t, status.IsHealthy)
	assert.Equal(t, time.Minute, status.ExpiresAt.Sub(status.LastUpdated))
}

func TestUpdateServerStatus(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewServerStatusService(repo, "app", "v", time.Minute)
	svc.sample = fixedLoad

	require.NoError(t, svc.UpdateServerStatus(context.Background()))
	assert.Equal(t, 1, repo.count())

	repo.err = errors.New("put failed")
	assert.ErrorIs(t, svc.UpdateServerStatus(context.Background()), repo.err)
}

func TestUpdateServerStatus_NoRepo(t *testing.T) {
	svc := NewServerStatusService(nil, "app", "v", time.Minute)
	svc.sample = fixedLoad

	assert.NoError(t, svc.UpdateServerStatus(context.Background()))
}

func TestRun_StopsOnCancel(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewServerStatusService(repo, "app", "v", time.Minute)
	svc.sample = fixedLoad

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return repo.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
