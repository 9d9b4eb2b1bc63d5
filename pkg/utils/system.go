package utils

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ServerLoad summarizes host resource usage. All values are in [0, 1].
type ServerLoad struct {
	CpuUsage    float64
	MemoryUsage float64
	Load        float64
	Capacity    float64
	IsHealthy   bool
}

// GetSystemMetrics returns cpu and memory usage as fractions.
// Failures read as zero usage.
func GetSystemMetrics() (float64, float64) {
	cpuUsage := 0.0
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuUsage = percents[0] / 100
	} else if err != nil {
		Debug("system", "cpu usage unavailable: %v", err)
	}

	memoryUsage := 0.0
	if vm, err := mem.VirtualMemory(); err == nil {
		memoryUsage = vm.UsedPercent / 100
	} else {
		Debug("system", "memory usage unavailable: %v", err)
	}

	return cpuUsage, memoryUsage
}

// GetServerLoad samples the host and derives load, capacity and health.
func GetServerLoad() ServerLoad {
	return ComputeServerLoad(GetSystemMetrics())
}

// ComputeServerLoad weights cpu 0.7 and memory 0.3. The host is unhealthy
// above 90% cpu or 95% memory.
func ComputeServerLoad(cpuUsage, memoryUsage float64) ServerLoad {
	load := (cpuUsage * 0.7) + (memoryUsage * 0.3)

	capacity := 1.0 - load
	if capacity < 0 {
		capacity = 0
	}

	return ServerLoad{
		CpuUsage:    cpuUsage,
		MemoryUsage: memoryUsage,
		Load:        load,
		Capacity:    capacity,
		IsHealthy:   cpuUsage <= 0.9 && memoryUsage <= 0.95,
	}
}
