package hjembank

import (
	"encoding/json"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The ledger is single-currency: every balance and every entry amount is in
// Norwegian kroner. Amounts are kept as exact decimals so that repeated
// transfers never drift.
const Currency = money.NOK

// nokFraction is the number of minor-unit digits for the ledger currency.
var nokFraction = money.GetCurrency(Currency).Fraction

// Norwegian display convention: grouped thousands with a space, two decimals
// behind a comma. One formatter for bare amounts, one with the kr grapheme.
var (
	amountFormatter   = money.NewFormatter(nokFraction, ",", " ", "", "1")
	currencyFormatter = money.NewFormatter(nokFraction, ",", " ", "kr", "1 $")
)

// Money represents an exact monetary value in the ledger currency.
type Money struct {
	value decimal.Decimal // in major units
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	}
	return decimal.Decimal{}
}

// ParseAmount parses user input into a Money value. It accepts the display
// convention ("2 000,50") as well as plain machine forms ("2000.50"): spaces
// and non-breaking spaces are group separators, a comma is a decimal point.
func ParseAmount(s string) (Money, error) {
	normalized := strings.NewReplacer(" ", "", " ", "", ",", ".").Replace(strings.TrimSpace(s))
	if normalized == "" {
		return Money{}, ErrInvalidAmount
	}
	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return Money{value: value}, nil
}

// minor returns the amount in minor units, rounded to the currency fraction.
func (m Money) minor() int64 {
	return m.value.Round(int32(nokFraction)).Shift(int32(nokFraction)).IntPart()
}

// String formats the bare amount, e.g. "21 208,00".
func (m Money) String() string { return amountFormatter.Format(m.minor()) }

// Display formats the amount with the currency grapheme, e.g. "21 208,00 kr".
func (m Money) Display() string { return currencyFormatter.Format(m.minor()) }

// SignedString formats the amount with an explicit sign for inflows, the way
// the transaction list displays it. Zero renders as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// Ratio returns m/n as a plain float, for progress bars. n must not be zero.
func (m Money) Ratio(n Money) float64 { return m.value.Div(n.value).InexactFloat64() }

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.value.Round(int32(nokFraction)))
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var value decimal.Decimal
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	m.value = value
	return nil
}
