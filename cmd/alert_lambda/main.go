package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/travel-payments/pkg/config"
	"github.com/chris/travel-payments/pkg/logger"
	"github.com/chris/travel-payments/pkg/models"
	"github.com/chris/travel-payments/pkg/storage/dynamodb"
	"github.com/chris/travel-payments/pkg/websockets"
	"github.com/rs/zerolog"
)

// newHandler fans each threshold crossing out to the connected clients.
// Failed records are reported individually so SQS only redelivers those.
func newHandler(pub websockets.Publisher, log zerolog.Logger) func(context.Context, events.SQSEvent) (events.SQSEventResponse, error) {
	return func(ctx context.Context, sqsEvent events.SQSEvent) (events.SQSEventResponse, error) {
		ctx = logger.WithContext(ctx, log)
		return processRecords(ctx, pub, sqsEvent.Records), nil
	}
}

func processRecords(ctx context.Context, pub websockets.Publisher, records []events.SQSMessage) events.SQSEventResponse {
	log := logger.FromContext(ctx)
	var resp events.SQSEventResponse

	for _, message := range records {
		msgLog := log.With().Str("message_id", message.MessageId).Logger()

		var crossing models.ThresholdCrossing
		if err := json.Unmarshal([]byte(message.Body), &crossing); err != nil {
			// Redelivery cannot fix a malformed body.
			msgLog.Error().Err(err).Msg("failed to unmarshal threshold crossing, dropping message")
			continue
		}

		if err := pub.Publish(ctx, websockets.NewBudgetAlert(crossing)); err != nil {
			msgLog.Error().Err(err).Str("budget_id", crossing.BudgetID).Msg("failed to publish budget alert")
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
			continue
		}

		msgLog.Info().Str("budget_id", crossing.BudgetID).Str("threshold", string(crossing.Kind)).Msg("budget alert published")
	}

	return resp
}

func main() {
	log := logger.New()

	cfg, err := config.LoadWebsocket(true)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	log = log.Level(logger.ParseLevel(cfg.LogLevel))

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load SDK config")
	}

	store := dynamodb.New(awsdynamodb.NewFromConfig(awsCfg), dynamodb.Tables(cfg.Tables))
	publisher, err := websockets.NewPublisher(ctx, store, cfg.WebsocketEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create websocket publisher")
	}

	lambda.Start(newHandler(publisher, log))
}
