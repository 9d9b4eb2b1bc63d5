package model

import (
	"time"
)

// ServerStatus is the heartbeat an instance writes to DynamoDB.
// It carries host load figures only, never onboarding data.
type ServerStatus struct {
	// AppName is the partition key.
	AppName     string    `json:"appName" dynamodbav:"AppName"`
	Version     string    `json:"version" dynamodbav:"version"`
	LastUpdated time.Time `json:"lastUpdated" dynamodbav:"lastUpdated"`
	// ExpiresAt doubles as the table TTL attribute.
	ExpiresAt time.Time `json:"expiresAt" dynamodbav:"expiresAt,unixtime"`

	// Load and Capacity are in [0, 1].
	Load      float64 `json:"load" dynamodbav:"load"`
	IsHealthy bool    `json:"isHealthy" dynamodbav:"isHealthy"`
	Capacity  float64 `json:"capacity" dynamodbav:"capacity"`

	CpuUsage    float64 `json:"cpuUsage" dynamodbav:"cpuUsage"`
	MemoryUsage float64 `json:"memoryUsage" dynamodbav:"memoryUsage"`
}
