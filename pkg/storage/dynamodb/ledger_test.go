package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/travel-payments/pkg/models"
	"github.com/chris/travel-payments/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListAccountTransactions(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	entries := []models.AccountTransaction{
		{EntryID: "0190f0a0-0002", AccountID: "acc-1", Type: models.AccountTransactionTypeWithdrawal, Name: "Diner", Amount: models.MustDecimal("20"), BalanceAfter: models.MustDecimal("80"), Timestamp: ts},
		{EntryID: "0190f0a0-0001", AccountID: "acc-1", Type: models.AccountTransactionTypeWithdrawal, Name: "Cafe", Amount: models.MustDecimal("5"), BalanceAfter: models.MustDecimal("100"), Timestamp: ts},
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)

		var items []map[string]types.AttributeValue
		for _, entry := range entries {
			av, err := attributevalue.MarshalMap(entry)
			require.NoError(t, err)
			items = append(items, av)
		}
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
			return aws.ToString(in.TableName) == "account-transactions" &&
				in.ExpressionAttributeNames["#pk"] == "account_id" &&
				!aws.ToBool(in.ScanIndexForward) &&
				aws.ToInt32(in.Limit) == 2
		})).Return(&dynamodb.QueryOutput{Items: items}, nil)

		store := New(mockClient, testTables)
		result, err := store.ListAccountTransactions(context.Background(), "acc-1", 2)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "0190f0a0-0002", result[0].EntryID)
		assert.Equal(t, "Diner", result[0].Name)
		assert.True(t, result[0].BalanceAfter.Equal(entries[0].BalanceAfter.Decimal))
		assert.True(t, ts.Equal(result[1].Timestamp))
		mockClient.AssertExpectations(t)
	})

	t.Run("Empty", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
			return in.Limit == nil
		})).Return(&dynamodb.QueryOutput{}, nil)

		store := New(mockClient, testTables)
		result, err := store.ListAccountTransactions(context.Background(), "acc-1", 0)

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("query failed"))

		store := New(mockClient, testTables)
		_, err := store.ListAccountTransactions(context.Background(), "acc-1", 2)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query account transactions")
		mockClient.AssertExpectations(t)
	})
}

func TestListTravelTransactions(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)

	av, err := attributevalue.MarshalMap(models.TravelTransaction{EntryID: "e-1", WalletID: "wal-1", TravelID: "travel-1", CategoryID: "food", Amount: models.MustDecimal("12.5")})
	require.NoError(t, err)
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return aws.ToString(in.TableName) == "travel-transactions" && in.ExpressionAttributeNames["#pk"] == "wallet_id"
	})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{av}}, nil)

	store := New(mockClient, testTables)
	result, err := store.ListTravelTransactions(context.Background(), "wal-1", 20)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "food", result[0].CategoryID)
	mockClient.AssertExpectations(t)
}
