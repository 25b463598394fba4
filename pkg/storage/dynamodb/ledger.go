package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/travel-payments/pkg/models"
)

// ListAccountTransactions returns the newest ledger entries of an account.
// Entry IDs are time-ordered, so the sort key orders the ledger.
func (s *Store) ListAccountTransactions(ctx context.Context, accountID string, limit int32) ([]models.AccountTransaction, error) {
	input := newestFirstQuery(s.Tables.AccountTransactions, "account_id", accountID, limit)

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query account transactions: %w", err)
	}

	entries := []models.AccountTransaction{}
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account transactions: %w", err)
	}

	return entries, nil
}

// ListTravelTransactions returns the newest ledger entries of a travel wallet.
func (s *Store) ListTravelTransactions(ctx context.Context, walletID string, limit int32) ([]models.TravelTransaction, error) {
	input := newestFirstQuery(s.Tables.TravelTransactions, "wallet_id", walletID, limit)

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query travel transactions: %w", err)
	}

	entries := []models.TravelTransaction{}
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal travel transactions: %w", err)
	}

	return entries, nil
}

func newestFirstQuery(table, partitionKey, id string, limit int32) *dynamodb.QueryInput {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(table),
		KeyConditionExpression: aws.String("#pk = :id"),
		ExpressionAttributeNames: map[string]string{
			"#pk": partitionKey,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		ScanIndexForward: aws.Bool(false), // Sort by entry ID in descending order
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}
	return input
}
