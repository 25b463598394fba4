package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/travel-payments/pkg/config"
	wshandlers "github.com/chris/travel-payments/pkg/handlers/websockets"
	"github.com/chris/travel-payments/pkg/logger"
	"github.com/chris/travel-payments/pkg/storage/dynamodb"
	"github.com/rs/zerolog"
)

// newRouter dispatches API Gateway websocket routes to the handler.
func newRouter(h *wshandlers.Handler, log zerolog.Logger) func(context.Context, events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
		ctx = logger.WithContext(ctx, log.With().Str("request_id", request.RequestContext.RequestID).Logger())

		switch request.RequestContext.RouteKey {
		case "$connect":
			return h.HandleConnect(ctx, request)
		case "$disconnect":
			return h.HandleDisconnect(ctx, request)
		default:
			return h.HandleDefault(ctx, request)
		}
	}
}

func main() {
	log := logger.New()

	cfg, err := config.LoadWebsocket(false)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	log = log.Level(logger.ParseLevel(cfg.LogLevel))

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load SDK config")
	}

	store := dynamodb.New(awsdynamodb.NewFromConfig(awsCfg), dynamodb.Tables(cfg.Tables))
	lambda.Start(newRouter(wshandlers.NewHandler(store), log))
}
