package payment

// ErrorCode is the stable, machine-readable identifier of a payment failure.
type ErrorCode string

const (
	CodeMerchantNotFound     ErrorCode = "MERCHANT_NOT_FOUND"
	CodeStoreNotFound        ErrorCode = "WITHDRAWAL_STORE_NOT_FOUND"
	CodeCurrencyMismatch     ErrorCode = "MERCHANT_AND_PAYMENT_CURRENCY_MISMATCH"
	CodeInvalidAmount        ErrorCode = "INVALID_PRICE_VALUE"
	CodeInsufficientBalance  ErrorCode = "INSUFFICIENT_BALANCE"
	CodeBudgetNotFound       ErrorCode = "TRAVEL_BUDGET_NOT_FOUND"
	CodeUnsupportedStoreKind ErrorCode = "UNSUPPORTED_STORE_KIND"
)

// Error is an expected payment failure the caller can act on. Anything else
// returned by the engine is unclassified.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrMerchantNotFound     = &Error{Code: CodeMerchantNotFound, Message: "merchant not found"}
	ErrStoreNotFound        = &Error{Code: CodeStoreNotFound, Message: "withdrawal account or wallet not found"}
	ErrCurrencyMismatch     = &Error{Code: CodeCurrencyMismatch, Message: "merchant currency does not match the payment currency"}
	ErrInvalidAmount        = &Error{Code: CodeInvalidAmount, Message: "payment amount must be greater than zero"}
	ErrInsufficientBalance  = &Error{Code: CodeInsufficientBalance, Message: "insufficient balance"}
	ErrBudgetNotFound       = &Error{Code: CodeBudgetNotFound, Message: "travel budget not found for the merchant category"}
	ErrUnsupportedStoreKind = &Error{Code: CodeUnsupportedStoreKind, Message: "unsupported store kind"}
)
