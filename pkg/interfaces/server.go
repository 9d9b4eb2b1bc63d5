package _interface

import (
	"context"

	model "github.com/sh5080/quickvest-go/pkg/types/models"
)

// ServerStatusService reports this instance's load.
type ServerStatusService interface {
	GetServerStatus() *model.ServerStatus
	UpdateServerStatus(ctx context.Context) error
}

// ServerStatusRepository persists instance heartbeats.
type ServerStatusRepository interface {
	UpdateServerStatus(ctx context.Context, status *model.ServerStatus) error
	GetServerStatus(ctx context.Context, appName string) (*model.ServerStatus, error)
}
