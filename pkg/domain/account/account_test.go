package account_test

import (
	"testing"

	"github.com/amirasaad/bankledger/pkg/domain/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_OpeningBalanceBounds(t *testing.T) {
	_, err := account.New("user-1", decimal.NewFromInt(99))
	assert.ErrorIs(t, err, account.ErrInvalidAmount)

	_, err = account.New("user-1", decimal.NewFromInt(1001))
	assert.ErrorIs(t, err, account.ErrInvalidAmount)

	a, err := account.New("user-1", decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, "user-1", a.UserID)
	assert.True(t, a.IsActive)
	assert.Empty(t, a.AccountNumber, "numbers are assigned by the ledger")
	assert.Empty(t, a.RoutingNumber)
}

func TestDeposit_ExactArithmetic(t *testing.T) {
	a, err := account.New("user-1", decimal.RequireFromString("100.10"))
	require.NoError(t, err)

	// Repeated small deposits must not drift.
	for range 100 {
		require.NoError(t, a.Deposit(decimal.RequireFromString("1.01")))
	}
	assert.True(t, a.Balance.Equal(decimal.RequireFromString("201.10")),
		"got %s", a.Balance)
}

func TestWithdraw_LeavesExactlyTheFloor(t *testing.T) {
	a, err := account.New("user-1", decimal.NewFromInt(1000))
	require.NoError(t, err)

	// 900 is exactly the 90% cap and leaves exactly the floor.
	require.NoError(t, a.Withdraw(decimal.NewFromInt(900)))
	assert.True(t, a.Balance.Equal(account.MinBalance))

	err = a.Withdraw(decimal.NewFromInt(1))
	assert.ErrorIs(t, err, account.ErrMinimumBalance)
}
