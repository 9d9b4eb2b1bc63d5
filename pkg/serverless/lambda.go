package serverless

import (
	"context"
	"errors"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	fiberadapter "github.com/awslabs/aws-lambda-go-api-proxy/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/quickvest-go/pkg/configs"
	"github.com/sh5080/quickvest-go/pkg/utils"
)

var fiberLambda *fiberadapter.FiberLambda

var errNotInitialized = errors.New("lambda handler used before Init")

// Init attaches app to the API Gateway adapter. The app lives across invocations.
func Init(app *fiber.App) {
	fiberLambda = fiberadapter.New(app)
}

// Handler proxies one API Gateway event through the fiber app.
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if fiberLambda == nil {
		return events.APIGatewayProxyResponse{}, errNotInitialized
	}
	return fiberLambda.ProxyWithContext(ctx, req)
}

// LambdaMain is the AWS Lambda entry point.
func LambdaMain() {
	config, err := configs.Load()
	if err != nil {
		utils.Fatal("lambda", "failed to load config: %v", err)
	}

	if _, err := utils.InitLogger(config.Log.Level, config.LoggerFormat()); err != nil {
		utils.Fatal("lambda", "failed to init logger: %v", err)
	}

	app, err := BuildApp(context.Background(), config)
	if err != nil {
		utils.Fatal("lambda", "failed to build app: %v", err)
	}

	utils.Info("lambda", "fiber app initialized for %s", config.Server.AppName)
	Init(app)
	lambda.Start(Handler)
}
