package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpendableStore is the capability shared by every store a payment can be
// drawn from.
type SpendableStore interface {
	StoreID() string
	AvailableBalance() decimal.Decimal
	CurrencyCode() string
	// Debit lowers the balance. Callers validate the amount first.
	Debit(amount decimal.Decimal)
}

// Account is a customer's domestic (common currency) account.
type Account struct {
	AccountID     string    `json:"account_id" dynamodbav:"account_id"`
	AccountNumber string    `json:"account_number" dynamodbav:"account_number"`
	OwnerID       string    `json:"owner_id" dynamodbav:"owner_id"`
	Balance       Decimal   `json:"balance" dynamodbav:"balance"`
	Currency      string    `json:"currency" dynamodbav:"currency"`
	Version       int64     `json:"version" dynamodbav:"version"`
	CreatedAt     time.Time `json:"created_at" dynamodbav:"created_at"`
}

func (a *Account) StoreID() string                   { return a.AccountID }
func (a *Account) AvailableBalance() decimal.Decimal { return a.Balance.Decimal }
func (a *Account) CurrencyCode() string              { return a.Currency }

func (a *Account) Debit(amount decimal.Decimal) {
	a.Balance = NewDecimal(a.Balance.Sub(amount))
}

// TravelWallet is the foreign-currency wallet attached to a travel.
type TravelWallet struct {
	WalletID  string    `json:"wallet_id" dynamodbav:"wallet_id"`
	TravelID  string    `json:"travel_id" dynamodbav:"travel_id"`
	Balance   Decimal   `json:"balance" dynamodbav:"balance"`
	Currency  string    `json:"currency" dynamodbav:"currency"`
	Version   int64     `json:"version" dynamodbav:"version"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}

func (w *TravelWallet) StoreID() string                   { return w.WalletID }
func (w *TravelWallet) AvailableBalance() decimal.Decimal { return w.Balance.Decimal }
func (w *TravelWallet) CurrencyCode() string              { return w.Currency }

func (w *TravelWallet) Debit(amount decimal.Decimal) {
	w.Balance = NewDecimal(w.Balance.Sub(amount))
}

var (
	_ SpendableStore = (*Account)(nil)
	_ SpendableStore = (*TravelWallet)(nil)
)

// Merchant is read-only from the payment flow's point of view.
type Merchant struct {
	MerchantID    string `json:"merchant_id" dynamodbav:"merchant_id"`
	Name          string `json:"name" dynamodbav:"name"`
	Currency      string `json:"currency" dynamodbav:"currency"`
	CategoryID    string `json:"category_id" dynamodbav:"category_id"`
	AccountNumber string `json:"account_number" dynamodbav:"account_number"`
}

// Ledger entry type codes for common accounts.
const (
	AccountTransactionTypeWithdrawal = 2

	AccountTransactionTypeNameWithdrawal = "withdrawal"
)

// AccountTransaction is an immutable ledger entry of a common account.
type AccountTransaction struct {
	EntryID                   string    `json:"entry_id" dynamodbav:"entry_id"`
	AccountID                 string    `json:"account_id" dynamodbav:"account_id"`
	Type                      int       `json:"type" dynamodbav:"type"`
	TypeName                  string    `json:"type_name" dynamodbav:"type_name"`
	Name                      string    `json:"name" dynamodbav:"name"`
	CounterpartyAccountNumber string    `json:"counterparty_account_number" dynamodbav:"counterparty_account_number"`
	Amount                    Decimal   `json:"amount" dynamodbav:"amount"`
	BalanceAfter              Decimal   `json:"balance_after" dynamodbav:"balance_after"`
	Timestamp                 time.Time `json:"timestamp" dynamodbav:"timestamp"`
}

// TravelTransaction is an immutable ledger entry of a travel wallet.
type TravelTransaction struct {
	EntryID      string    `json:"entry_id" dynamodbav:"entry_id"`
	WalletID     string    `json:"wallet_id" dynamodbav:"wallet_id"`
	TravelID     string    `json:"travel_id" dynamodbav:"travel_id"`
	CategoryID   string    `json:"category_id" dynamodbav:"category_id"`
	Name         string    `json:"name" dynamodbav:"name"`
	Amount       Decimal   `json:"amount" dynamodbav:"amount"`
	BalanceAfter Decimal   `json:"balance_after" dynamodbav:"balance_after"`
	Timestamp    time.Time `json:"timestamp" dynamodbav:"timestamp"`
}
