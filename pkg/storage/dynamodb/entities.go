package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/travel-payments/pkg/models"
	"github.com/chris/travel-payments/pkg/storage"
)

// GetMerchant retrieves a merchant by its ID.
func (s *Store) GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error) {
	return s.getMerchant(ctx, merchantID, false)
}

// GetAccount retrieves a common account by its ID.
func (s *Store) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	return s.getAccount(ctx, accountID, false)
}

// GetTravelWallet retrieves a travel wallet by its ID.
func (s *Store) GetTravelWallet(ctx context.Context, walletID string) (*models.TravelWallet, error) {
	return s.getTravelWallet(ctx, walletID, false)
}

// FindBudgetByCategoryAndTravel retrieves the budget of one category within a travel.
func (s *Store) FindBudgetByCategoryAndTravel(ctx context.Context, travelID, categoryID string) (*models.Budget, error) {
	return s.getBudget(ctx, travelID, categoryID, false)
}

func (s *Store) getMerchant(ctx context.Context, merchantID string, consistent bool) (*models.Merchant, error) {
	var merchant models.Merchant
	key := map[string]types.AttributeValue{
		"merchant_id": &types.AttributeValueMemberS{Value: merchantID},
	}
	if err := s.getItem(ctx, s.Tables.Merchants, key, consistent, &merchant); err != nil {
		return nil, fmt.Errorf("merchant %s: %w", merchantID, err)
	}
	return &merchant, nil
}

func (s *Store) getAccount(ctx context.Context, accountID string, consistent bool) (*models.Account, error) {
	var account models.Account
	key := map[string]types.AttributeValue{
		"account_id": &types.AttributeValueMemberS{Value: accountID},
	}
	if err := s.getItem(ctx, s.Tables.Accounts, key, consistent, &account); err != nil {
		return nil, fmt.Errorf("account %s: %w", accountID, err)
	}
	return &account, nil
}

func (s *Store) getTravelWallet(ctx context.Context, walletID string, consistent bool) (*models.TravelWallet, error) {
	var wallet models.TravelWallet
	key := map[string]types.AttributeValue{
		"wallet_id": &types.AttributeValueMemberS{Value: walletID},
	}
	if err := s.getItem(ctx, s.Tables.TravelWallets, key, consistent, &wallet); err != nil {
		return nil, fmt.Errorf("travel wallet %s: %w", walletID, err)
	}
	return &wallet, nil
}

func (s *Store) getBudget(ctx context.Context, travelID, categoryID string, consistent bool) (*models.Budget, error) {
	var budget models.Budget
	if err := s.getItem(ctx, s.Tables.Budgets, budgetKey(travelID, categoryID), consistent, &budget); err != nil {
		return nil, fmt.Errorf("budget for travel %s and category %s: %w", travelID, categoryID, err)
	}
	return &budget, nil
}

// getItem reads one item into out. A missing item is reported as storage.ErrNotFound.
func (s *Store) getItem(ctx context.Context, table string, key map[string]types.AttributeValue, consistent bool, out interface{}) error {
	input := &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            key,
		ConsistentRead: aws.Bool(consistent),
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to get item from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return storage.ErrNotFound
	}

	if err := attributevalue.UnmarshalMap(result.Item, out); err != nil {
		return fmt.Errorf("failed to unmarshal item: %w", err)
	}

	return nil
}

func budgetKey(travelID, categoryID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"travel_id":   &types.AttributeValueMemberS{Value: travelID},
		"category_id": &types.AttributeValueMemberS{Value: categoryID},
	}
}
