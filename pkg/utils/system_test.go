package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeServerLoad(t *testing.T) {
	load := ComputeServerLoad(0.5, 0.5)
	assert.InDelta(t, 0.5, load.Load, 1e-9)
	assert.InDelta(t, 0.5, load.Capacity, 1e-9)
	assert.True(t, load.IsHealthy)

	busy := ComputeServerLoad(0.95, 0.2)
	assert.False(t, busy.IsHealthy)

	full := ComputeServerLoad(1.0, 1.0)
	assert.Equal(t, 0.0, full.Capacity)
	assert.False(t, full.IsHealthy)
}

func TestGetServerLoadInRange(t *testing.T) {
	load := GetServerLoad()
	assert.GreaterOrEqual(t, load.CpuUsage, 0.0)
	assert.LessOrEqual(t, load.CpuUsage, 1.0)
	assert.GreaterOrEqual(t, load.MemoryUsage, 0.0)
	assert.LessOrEqual(t, load.MemoryUsage, 1.0)
}
