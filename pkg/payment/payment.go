package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// StoreKind selects which kind of store a payment is drawn from.
type StoreKind string

const (
	StoreKindCommon StoreKind = "COMMON"
	StoreKindTravel StoreKind = "TRAVEL"
)

// Request asks for Amount to be paid from a store to a merchant.
type Request struct {
	StoreKind  StoreKind
	StoreID    string
	MerchantID string
	Amount     decimal.Decimal
}

// Result describes a completed payment.
type Result struct {
	Currency     string
	MerchantName string
	Amount       decimal.Decimal
	MerchantID   string
}

// Processor settles payment requests.
type Processor interface {
	Process(ctx context.Context, req Request) (*Result, error)
}
