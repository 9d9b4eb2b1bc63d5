package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	client "github.com/sh5080/quickvest-go/pkg/clients"
	"github.com/sh5080/quickvest-go/pkg/configs"
	"github.com/sh5080/quickvest-go/pkg/db"
	_interface "github.com/sh5080/quickvest-go/pkg/interfaces"
	repository "github.com/sh5080/quickvest-go/pkg/repositories"
	route "github.com/sh5080/quickvest-go/pkg/routes"
	service "github.com/sh5080/quickvest-go/pkg/services"
	"github.com/sh5080/quickvest-go/pkg/services/external"
	"github.com/sh5080/quickvest-go/pkg/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := configs.Load()
	if err != nil {
		if cause := errors.Unwrap(err); cause != nil {
			log.Fatalf("failed to load config: %v: %v", err, cause)
		}
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.Log.Level, config.LoggerFormat())
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	utils.InitMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gemini, err := client.NewGeminiClient(ctx, config)
	if err != nil {
		utils.Fatal("main", "failed to init inference client: %v", err)
	}

	statusRepo := newStatusRepository(ctx, config)
	services := service.NewServiceContainer(config, gemini, statusRepo)

	if reporter, ok := services.ServerStatusService.(*external.ServerStatusService); ok && statusRepo != nil {
		go reporter.Run(ctx, config.Status.ReportInterval)
	}

	app := route.NewApp(config, services, false)

	go func() {
		<-ctx.Done()
		utils.Info("main", "shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			utils.Error("main", "shutdown failed: %v", err)
		}
	}()

	utils.Info("main", "%s %s listening on :%s", config.Server.AppName, config.Server.Version, config.Server.Port)
	if err := app.Listen(":" + config.Server.Port); err != nil {
		utils.Fatal("main", "server stopped: %v", err)
	}
}

// newStatusRepository returns nil when heartbeats are disabled or DynamoDB is unreachable.
func newStatusRepository(ctx context.Context, config *configs.EnvConfig) _interface.ServerStatusRepository {
	if !config.StatusReportingEnabled() {
		return nil
	}

	dynamo, err := db.NewDynamoClient(ctx, config)
	if err != nil {
		utils.Warn("main", "status reporting disabled: %v", err)
		return nil
	}

	repo := repository.NewServerStatusRepository(dynamo, config.AWS.Tables.ServerStatus)
	if err := repo.EnsureTable(ctx); err != nil {
		utils.Warn("main", "status reporting disabled: %v", err)
		return nil
	}
	return repo
}
