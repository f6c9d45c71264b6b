package core_test

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventflux/domain-eventbus-go/example/shared/core"
)

func Test_Money_BuildMoney_UsesDefaultCurrency_WhenCodeIsEmpty(t *testing.T) {
	// arrange
	amount, err := decimal.NewFromFloat64(10.5)
	require.NoError(t, err)

	// act
	money, buildErr := core.BuildMoney(amount, "")

	// assert
	require.NoError(t, buildErr)
	assert.Equal(t, core.DefaultCurrencyCode, money.Currency())
}

func Test_Money_BuildMoney_RejectsNegativeAmount(t *testing.T) {
	// arrange
	amount, err := decimal.NewFromFloat64(-0.01)
	require.NoError(t, err)

	// act
	_, buildErr := core.BuildMoney(amount, "EUR")

	// assert
	assert.ErrorIs(t, buildErr, core.ErrNegativeAmount)
	assert.ErrorIs(t, buildErr, core.ErrValidation)
}

func Test_Money_MoneyFromString_RejectsNonNumericInput(t *testing.T) {
	// act
	_, err := core.MoneyFromString("not-a-number", "EUR")

	// assert
	assert.ErrorIs(t, err, core.ErrAmountNotANumber)
}

func Test_Money_Add_SumsAmountsOfSameCurrency(t *testing.T) {
	// arrange
	first, err := core.MoneyFromFloat(199.9, "CNY")
	require.NoError(t, err)
	second, err := core.MoneyFromFloat(29.9, "CNY")
	require.NoError(t, err)

	// act
	sum, addErr := first.Add(second)

	// assert
	require.NoError(t, addErr)
	expected, err := core.MoneyFromString("229.8", "CNY")
	require.NoError(t, err)
	assert.True(t, sum.Equals(expected))
}

func Test_Money_Add_RejectsCurrencyMismatch(t *testing.T) {
	// arrange
	yuan, err := core.MoneyFromFloat(10, "CNY")
	require.NoError(t, err)
	euro, err := core.MoneyFromFloat(10, "EUR")
	require.NoError(t, err)

	// act
	_, addErr := yuan.Add(euro)

	// assert
	assert.ErrorIs(t, addErr, core.ErrCurrencyMismatch)
}

func Test_Money_MultiplyBy_ScalesAmountByWholeFactor(t *testing.T) {
	// arrange
	price, err := core.MoneyFromFloat(99.95, "CNY")
	require.NoError(t, err)

	// act
	total, mulErr := price.MultiplyBy(2)

	// assert
	require.NoError(t, mulErr)
	expected, err := core.MoneyFromString("199.9", "CNY")
	require.NoError(t, err)
	assert.True(t, total.Equals(expected))
}

func Test_Money_Equals_IgnoresDecimalScale(t *testing.T) {
	// arrange
	plain, err := core.MoneyFromString("1.5", "CNY")
	require.NoError(t, err)
	padded, err := core.MoneyFromString("1.50", "CNY")
	require.NoError(t, err)

	// act + assert
	assert.True(t, plain.Equals(padded))
}

func Test_Money_ZeroMoney_HasDefaultCurrencyAndZeroAmount(t *testing.T) {
	// act
	zero := core.ZeroMoney()

	// assert
	assert.Equal(t, core.DefaultCurrencyCode, zero.Currency())
	assert.True(t, zero.Amount().IsZero())
}
