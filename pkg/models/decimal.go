package models

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Decimal is a monetary amount. It is stored in DynamoDB as a number
// attribute and serialized to JSON as a string.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal wraps a decimal.Decimal.
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

// MustDecimal parses s and panics if it is not a valid decimal. Intended for
// constants and test fixtures.
func MustDecimal(s string) Decimal {
	return Decimal{Decimal: decimal.RequireFromString(s)}
}

// MarshalDynamoDBAttributeValue implements attributevalue.Marshaler.
func (d Decimal) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: d.String()}, nil
}

// UnmarshalDynamoDBAttributeValue implements attributevalue.Unmarshaler.
func (d *Decimal) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	case *types.AttributeValueMemberNULL:
		d.Decimal = decimal.Zero
		return nil
	default:
		return fmt.Errorf("unsupported attribute value type %T for decimal", av)
	}

	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("failed to parse decimal %q: %w", raw, err)
	}
	d.Decimal = parsed
	return nil
}
