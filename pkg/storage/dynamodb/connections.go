package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	connectionsIndex        = "pk-index"
	connectionsPartitionKey = "connections"
	connectionTTL           = 2 * time.Hour
)

// Connection is a record in the websocket connections table. All records
// share one partition key so the index can list them with a single query.
type Connection struct {
	ConnectionID string    `dynamodbav:"connection_id"`
	PK           string    `dynamodbav:"pk"`
	ConnectedAt  time.Time `dynamodbav:"connected_at"`
	TTL          int64     `dynamodbav:"ttl"`
}

// AddConnection saves a websocket connection ID.
func (s *Store) AddConnection(ctx context.Context, connectionID string) error {
	now := time.Now().UTC()
	item, err := attributevalue.MarshalMap(Connection{
		ConnectionID: connectionID,
		PK:           connectionsPartitionKey,
		ConnectedAt:  now,
		TTL:          now.Add(connectionTTL).Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal connection: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.Tables.Connections),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to save connection %s: %w", connectionID, err)
	}

	return nil
}

// RemoveConnection deletes a websocket connection ID.
func (s *Store) RemoveConnection(ctx context.Context, connectionID string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.Tables.Connections),
		Key: map[string]types.AttributeValue{
			"connection_id": &types.AttributeValueMemberS{Value: connectionID},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete connection %s: %w", connectionID, err)
	}

	return nil
}

// GetAllConnections lists the IDs of every stored connection.
func (s *Store) GetAllConnections(ctx context.Context) ([]string, error) {
	var (
		ids      []string
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.Tables.Connections),
			IndexName:              aws.String(connectionsIndex),
			KeyConditionExpression: aws.String("pk = :pk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: connectionsPartitionKey},
			},
			ProjectionExpression: aws.String("connection_id"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query connections table: %w", err)
		}

		var page []Connection
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal connections: %w", err)
		}
		for _, c := range page {
			ids = append(ids, c.ConnectionID)
		}

		if len(out.LastEvaluatedKey) == 0 {
			return ids, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
