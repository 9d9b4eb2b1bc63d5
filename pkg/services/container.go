package service

import (
	"github.com/sh5080/quickvest-go/pkg/configs"
	_interface "github.com/sh5080/quickvest-go/pkg/interfaces"
	"github.com/sh5080/quickvest-go/pkg/services/external"
	"github.com/sh5080/quickvest-go/pkg/services/internal/assistant"
	"github.com/sh5080/quickvest-go/pkg/services/internal/extractor"
)

// NewServiceContainer wires every service around one inference client.
// statusRepo may be nil, in which case status is only exposed locally.
func NewServiceContainer(
	config *configs.EnvConfig,
	inference _interface.InferenceClient,
	statusRepo _interface.ServerStatusRepository,
) *_interface.ServiceContainer {
	return &_interface.ServiceContainer{
		ExtractionService: extractor.NewLicenseService(inference, config),
		QuizService:       assistant.NewQuizService(inference, config),
		ServerStatusService: external.NewServerStatusService(
			statusRepo,
			config.Server.AppName,
			config.Server.Version,
			2*config.Status.ReportInterval,
		),
	}
}
