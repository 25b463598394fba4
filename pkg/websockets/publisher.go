package websockets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
	"github.com/chris/travel-payments/pkg/logger"
)

// DefaultPublisher pushes messages to every connection stored in a
// ConnectionStore through the API Gateway Management API.
type DefaultPublisher struct {
	store       ConnectionStore
	apiGwClient PostToConnectionAPI
}

// NewPublisher creates a DefaultPublisher for the given websocket API endpoint.
func NewPublisher(ctx context.Context, store ConnectionStore, apiEndpoint string) (*DefaultPublisher, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	apiGwClient := apigatewaymanagementapi.NewFromConfig(cfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(apiEndpoint)
	})

	return NewPublisherWithClient(store, apiGwClient), nil
}

// NewPublisherWithClient creates a DefaultPublisher around an existing client.
func NewPublisherWithClient(store ConnectionStore, client PostToConnectionAPI) *DefaultPublisher {
	return &DefaultPublisher{
		store:       store,
		apiGwClient: client,
	}
}

// Publish sends a message to all connected clients. Connections API Gateway
// reports as gone are removed; other per-connection failures are only logged.
func (p *DefaultPublisher) Publish(ctx context.Context, message Message) error {
	log := logger.FromContext(ctx)

	connectionIDs, err := p.store.GetAllConnections(ctx)
	if err != nil {
		return fmt.Errorf("failed to get all connections: %w", err)
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	for _, connectionID := range connectionIDs {
		_, err := p.apiGwClient.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
			ConnectionId: aws.String(connectionID),
			Data:         payload,
		})
		if err == nil {
			continue
		}

		var goneErr *apigwtypes.GoneException
		if errors.As(err, &goneErr) {
			log.Info().Str("connection_id", connectionID).Msg("stale connection found, deleting")
			if err := p.store.RemoveConnection(ctx, connectionID); err != nil {
				log.Error().Err(err).Str("connection_id", connectionID).Msg("failed to delete stale connection")
			}
			continue
		}
		log.Error().Err(err).Str("connection_id", connectionID).Msg("failed to post to connection")
	}

	return nil
}
