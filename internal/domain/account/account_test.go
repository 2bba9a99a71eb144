package account

import (
	"testing"

	"github.com/mcubank/transfers/internal/domain/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewAccount_Valid(t *testing.T) {
	acct, err := NewAccount("USER_001", "John Maxwell", "1234567890", dec("5000.00"))
	require.NoError(t, err)
	assert.Equal(t, "USER_001", acct.ID)
	assert.Equal(t, "John Maxwell", acct.Name)
	assert.Equal(t, "1234567890", acct.AccountNumber)
	assert.True(t, acct.Balance.Equal(dec("5000.00")))
}

func TestNewAccount_EmptyID(t *testing.T) {
	_, err := NewAccount("", "John Maxwell", "1234567890", dec("5000.00"))
	assert.Error(t, err)
}

func TestNewAccount_EmptyAccountNumber(t *testing.T) {
	_, err := NewAccount("USER_001", "John Maxwell", "", dec("5000.00"))
	assert.Error(t, err)
}

func TestNewAccount_NegativeBalance(t *testing.T) {
	_, err := NewAccount("USER_001", "John Maxwell", "1234567890", dec("-1.00"))
	assert.Error(t, err)
}

func TestNewAccount_ZeroBalance(t *testing.T) {
	acct, err := NewAccount("USER_001", "John Maxwell", "1234567890", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, acct.Balance.IsZero())
}

// --- CanTransfer ---

func TestCanTransfer(t *testing.T) {
	acct, _ := NewAccount("USER_001", "John Maxwell", "1234567890", dec("5000.00"))

	assert.True(t, acct.CanTransfer(dec("0.01")))
	assert.True(t, acct.CanTransfer(dec("5000.00")))
	assert.False(t, acct.CanTransfer(dec("5000.01")))
	assert.False(t, acct.CanTransfer(decimal.Zero))
	assert.False(t, acct.CanTransfer(dec("-10.00")))
}

// --- Deduct ---

func TestDeduct_Success(t *testing.T) {
	acct, _ := NewAccount("USER_001", "John Maxwell", "1234567890", dec("5000.00"))

	updated, err := acct.Deduct(dec("100.50"))
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(dec("4899.50")))
	// receiver untouched
	assert.True(t, acct.Balance.Equal(dec("5000.00")))
}

func TestDeduct_ExactBalance(t *testing.T) {
	acct, _ := NewAccount("USER_001", "John Maxwell", "1234567890", dec("5000.00"))

	updated, err := acct.Deduct(dec("5000.00"))
	require.NoError(t, err)
	assert.True(t, updated.Balance.IsZero())
}

func TestDeduct_InsufficientFunds(t *testing.T) {
	acct, _ := NewAccount("USER_001", "John Maxwell", "1234567890", dec("5000.00"))

	updated, err := acct.Deduct(dec("5000.01"))
	assert.ErrorIs(t, err, errors.ErrInsufficientFunds)
	assert.True(t, updated.Balance.Equal(dec("5000.00")))
}

func TestDeduct_ZeroAmount(t *testing.T) {
	acct, _ := NewAccount("USER_001", "John Maxwell", "1234567890", dec("5000.00"))

	_, err := acct.Deduct(decimal.Zero)
	assert.ErrorIs(t, err, errors.ErrInsufficientFunds)
}

func TestDeduct_NegativeAmount(t *testing.T) {
	acct, _ := NewAccount("USER_001", "John Maxwell", "1234567890", dec("5000.00"))

	_, err := acct.Deduct(dec("-100.00"))
	assert.ErrorIs(t, err, errors.ErrInsufficientFunds)
}

func TestDeduct_ErrorMessage(t *testing.T) {
	acct, _ := NewAccount("USER_001", "John Maxwell", "1234567890", dec("10.50"))

	_, err := acct.Deduct(dec("100.00"))
	require.Error(t, err)
	assert.Equal(t, "Insufficient balance. Available: 10.50, Required: 100.00", err.Error())
}
