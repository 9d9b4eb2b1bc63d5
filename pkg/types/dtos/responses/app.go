package response

import "time"

// HealthResponse is the liveness payload of /api/health.
type HealthResponse struct {
	Status      string    `json:"status"`
	Time        time.Time `json:"time"`
	Version     string    `json:"version"`
	Uptime      string    `json:"uptime"`
	GoVersion   string    `json:"goVersion"`
	CpuUsage    float64   `json:"cpuUsage"`
	MemoryUsage float64   `json:"memoryUsage"`
}
