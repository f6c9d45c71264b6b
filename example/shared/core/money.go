package core

import (
	"errors"

	"github.com/govalues/decimal"
)

// DefaultCurrencyCode is used when no currency code is supplied.
const DefaultCurrencyCode CurrencyCodeString = "CNY"

// Money is an immutable value object holding a non-negative decimal amount
// and a currency code. Two Money values are equal when amount and currency
// are equal by value, regardless of decimal scale.
type Money struct {
	amount   decimal.Decimal
	currency CurrencyCodeString
}

// BuildMoney creates a Money from a decimal amount and a currency code.
// An empty currency code defaults to DefaultCurrencyCode.
// Returns ErrNegativeAmount for negative amounts.
func BuildMoney(amount decimal.Decimal, currency CurrencyCodeString) (Money, error) {
	if amount.IsNeg() {
		return Money{}, ErrNegativeAmount
	}

	if currency == "" {
		currency = DefaultCurrencyCode
	}

	return Money{amount: amount, currency: currency}, nil
}

// MoneyFromFloat creates a Money from a float amount and a currency code.
// Returns ErrAmountNotANumber when the float cannot be represented as a decimal.
func MoneyFromFloat(amount float64, currency CurrencyCodeString) (Money, error) {
	dec, err := decimal.NewFromFloat64(amount)
	if err != nil {
		return Money{}, errors.Join(ErrAmountNotANumber, err)
	}

	return BuildMoney(dec, currency)
}

// MoneyFromString creates a Money from a decimal string and a currency code.
func MoneyFromString(amount string, currency CurrencyCodeString) (Money, error) {
	dec, err := decimal.Parse(amount)
	if err != nil {
		return Money{}, errors.Join(ErrAmountNotANumber, err)
	}

	return BuildMoney(dec, currency)
}

// ZeroMoney returns a zero amount in the default currency.
func ZeroMoney() Money {
	return Money{currency: DefaultCurrencyCode}
}

// Add returns the sum of two Money values.
// Returns ErrCurrencyMismatch when the currency codes differ; neither operand is mutated.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}

	sum, err := m.amount.Add(other.amount)
	if err != nil {
		return Money{}, errors.Join(ErrAmountNotANumber, err)
	}

	return Money{amount: sum, currency: m.currency}, nil
}

// MultiplyBy returns this amount scaled by a whole-number factor.
func (m Money) MultiplyBy(factor int) (Money, error) {
	multiplier, err := decimal.New(int64(factor), 0)
	if err != nil {
		return Money{}, errors.Join(ErrAmountNotANumber, err)
	}

	product, err := m.amount.Mul(multiplier)
	if err != nil {
		return Money{}, errors.Join(ErrAmountNotANumber, err)
	}

	if product.IsNeg() {
		return Money{}, ErrNegativeAmount
	}

	return Money{amount: product, currency: m.currency}, nil
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code, never empty for values built through the factories.
func (m Money) Currency() CurrencyCodeString {
	if m.currency == "" {
		return DefaultCurrencyCode
	}

	return m.currency
}

// Equals compares by value: same currency and numerically equal amounts.
func (m Money) Equals(other Money) bool {
	return m.Currency() == other.Currency() && m.amount.Cmp(other.amount) == 0
}

// String renders the amount followed by the currency code, e.g. "229.8 CNY".
func (m Money) String() string {
	return m.amount.String() + " " + m.Currency()
}
