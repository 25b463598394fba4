package dynamodb

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/travel-payments/pkg/models"
	"github.com/chris/travel-payments/pkg/storage"
	"github.com/google/uuid"
)

// Begin opens a unit of work. Nothing is sent to DynamoDB until Commit, which
// writes every staged change with a single TransactWriteItems call.
func (s *Store) Begin(ctx context.Context) (storage.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}

	return &tx{
		store:    s,
		accounts: make(map[string]models.Account),
		wallets:  make(map[string]models.TravelWallet),
		budgets:  make(map[budgetRef]models.Budget),
	}, nil
}

// tx stages writes per item, since a DynamoDB transaction may touch each item
// only once. Every update is conditioned on the version that was read.
type tx struct {
	store  *Store
	closed bool

	accounts map[string]models.Account
	wallets  map[string]models.TravelWallet
	budgets  map[budgetRef]models.Budget
	puts     []types.TransactWriteItem
}

type budgetRef struct {
	travelID   string
	categoryID string
}

func compareBudgetRefs(a, b budgetRef) int {
	return cmp.Or(cmp.Compare(a.travelID, b.travelID), cmp.Compare(a.categoryID, b.categoryID))
}

var _ storage.Tx = (*tx)(nil)

func (t *tx) GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error) {
	if t.closed {
		return nil, storage.ErrTxClosed
	}
	return t.store.getMerchant(ctx, merchantID, true)
}

func (t *tx) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	if t.closed {
		return nil, storage.ErrTxClosed
	}
	if a, ok := t.accounts[accountID]; ok {
		return &a, nil
	}
	return t.store.getAccount(ctx, accountID, true)
}

func (t *tx) GetTravelWallet(ctx context.Context, walletID string) (*models.TravelWallet, error) {
	if t.closed {
		return nil, storage.ErrTxClosed
	}
	if w, ok := t.wallets[walletID]; ok {
		return &w, nil
	}
	return t.store.getTravelWallet(ctx, walletID, true)
}

func (t *tx) FindBudgetByCategoryAndTravel(ctx context.Context, travelID, categoryID string) (*models.Budget, error) {
	if t.closed {
		return nil, storage.ErrTxClosed
	}
	if b, ok := t.budgets[budgetRef{travelID, categoryID}]; ok {
		return &b, nil
	}
	return t.store.getBudget(ctx, travelID, categoryID, true)
}

func (t *tx) SaveAccount(ctx context.Context, account *models.Account) error {
	if t.closed {
		return storage.ErrTxClosed
	}
	if account.Balance.IsNegative() {
		return fmt.Errorf("account %s: negative balance: %w", account.AccountID, storage.ErrConflict)
	}
	t.accounts[account.AccountID] = *account
	return nil
}

func (t *tx) SaveTravelWallet(ctx context.Context, wallet *models.TravelWallet) error {
	if t.closed {
		return storage.ErrTxClosed
	}
	if wallet.Balance.IsNegative() {
		return fmt.Errorf("travel wallet %s: negative balance: %w", wallet.WalletID, storage.ErrConflict)
	}
	t.wallets[wallet.WalletID] = *wallet
	return nil
}

func (t *tx) SaveBudget(ctx context.Context, budget *models.Budget) error {
	if t.closed {
		return storage.ErrTxClosed
	}
	t.budgets[budgetRef{budget.TravelID, budget.CategoryID}] = *budget
	return nil
}

func (t *tx) AppendAccountTransaction(ctx context.Context, entry *models.AccountTransaction) error {
	if t.closed {
		return storage.ErrTxClosed
	}
	return t.appendEntry(t.store.Tables.AccountTransactions, entry.EntryID, entry)
}

func (t *tx) AppendTravelTransaction(ctx context.Context, entry *models.TravelTransaction) error {
	if t.closed {
		return storage.ErrTxClosed
	}
	return t.appendEntry(t.store.Tables.TravelTransactions, entry.EntryID, entry)
}

func (t *tx) appendEntry(table, entryID string, entry interface{}) error {
	if entryID == "" {
		return fmt.Errorf("entry ID is required")
	}

	item, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger entry: %w", err)
	}

	t.puts = append(t.puts, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(table),
			Item:                item,
			ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
		},
	})
	return nil
}

// Commit writes every staged change atomically. A failed version condition is
// reported as storage.ErrConflict. Negative balances never get this far:
// SaveAccount and SaveTravelWallet reject them.
func (t *tx) Commit(ctx context.Context) error {
	if t.closed {
		return storage.ErrTxClosed
	}
	t.closed = true

	items, err := t.writeItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems:      items,
		ClientRequestToken: aws.String(uuid.NewString()),
	}

	_, err = t.store.Client.TransactWriteItems(ctx, input)
	if err != nil {
		if isConflict(err) {
			return fmt.Errorf("transaction cancelled: %w", storage.ErrConflict)
		}
		return fmt.Errorf("failed to execute payment transaction: %w", err)
	}

	return nil
}

// Rollback discards staged writes. It is a no-op after Commit.
func (t *tx) Rollback(ctx context.Context) error {
	t.closed = true
	return nil
}

// writeItems builds the transaction in a stable order: accounts, wallets,
// budgets, then ledger entries.
func (t *tx) writeItems() ([]types.TransactWriteItem, error) {
	items := make([]types.TransactWriteItem, 0, len(t.accounts)+len(t.wallets)+len(t.budgets)+len(t.puts))

	for _, id := range slices.Sorted(maps.Keys(t.accounts)) {
		a := t.accounts[id]
		item, err := balanceUpdate(t.store.Tables.Accounts, "account_id", id, a.Balance, a.Version)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	for _, id := range slices.Sorted(maps.Keys(t.wallets)) {
		w := t.wallets[id]
		item, err := balanceUpdate(t.store.Tables.TravelWallets, "wallet_id", id, w.Balance, w.Version)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	for _, key := range slices.SortedFunc(maps.Keys(t.budgets), compareBudgetRefs) {
		item, err := budgetUpdate(t.store.Tables.Budgets, t.budgets[key])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return append(items, t.puts...), nil
}

func balanceUpdate(table, keyName, id string, balance models.Decimal, version int64) (types.TransactWriteItem, error) {
	balanceAV, err := attributevalue.Marshal(balance)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("failed to marshal balance: %w", err)
	}

	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(table),
			Key: map[string]types.AttributeValue{
				keyName: &types.AttributeValueMemberS{Value: id},
			},
			UpdateExpression:    aws.String("SET balance = :balance, version = version + :inc"),
			ConditionExpression: aws.String("version = :version"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":balance": balanceAV,
				":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(version, 10)},
				":inc":     &types.AttributeValueMemberN{Value: "1"},
			},
		},
	}, nil
}

// budgetUpdate never lets used_amount go down, even if the version matches.
func budgetUpdate(table string, b models.Budget) (types.TransactWriteItem, error) {
	usedAV, err := attributevalue.Marshal(b.UsedAmount)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("failed to marshal used amount: %w", err)
	}

	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(table),
			Key:                 budgetKey(b.TravelID, b.CategoryID),
			UpdateExpression:    aws.String("SET used_amount = :used, crossed_fifty = :fifty, crossed_eighty = :eighty, version = version + :inc"),
			ConditionExpression: aws.String("version = :version AND used_amount <= :used"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":used":    usedAV,
				":fifty":   &types.AttributeValueMemberBOOL{Value: b.CrossedFifty},
				":eighty":  &types.AttributeValueMemberBOOL{Value: b.CrossedEighty},
				":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(b.Version, 10)},
				":inc":     &types.AttributeValueMemberN{Value: "1"},
			},
		},
	}, nil
}

func isConflict(err error) bool {
	var conflict *types.TransactionConflictException
	if errors.As(err, &conflict) {
		return true
	}

	var canceled *types.TransactionCanceledException
	if !errors.As(err, &canceled) {
		return false
	}
	for _, reason := range canceled.CancellationReasons {
		switch aws.ToString(reason.Code) {
		case "ConditionalCheckFailed", "TransactionConflict":
			return true
		}
	}
	return false
}
