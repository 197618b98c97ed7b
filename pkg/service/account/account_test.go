package account_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/amirasaad/bankledger/infra/repository/memory"
	"github.com/amirasaad/bankledger/pkg/domain/account"
	accountsvc "github.com/amirasaad/bankledger/pkg/service/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *accountsvc.Service {
	return accountsvc.New(memory.NewAccountStore(), slog.New(slog.DiscardHandler))
}

func TestCreateAccount_DefaultBalance(t *testing.T) {
	svc := newService()
	a, err := svc.CreateAccount(context.Background(), "user-1", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, a.Balance.Equal(accountsvc.DefaultOpeningBalance))
}

func TestCreateAccount_PropagatesValidation(t *testing.T) {
	svc := newService()
	_, err := svc.CreateAccount(context.Background(), "user-1", decimal.NewFromInt(5000))
	assert.ErrorIs(t, err, account.ErrInvalidAmount)
}

func TestDepositAndWithdraw_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	a, err := svc.CreateAccount(ctx, "user-1", decimal.NewFromInt(500))
	require.NoError(t, err)

	out := svc.Deposit(ctx, "user-1", a.ID, decimal.NewFromInt(250))
	require.True(t, out.Successful, out.Message)

	out = svc.Withdraw(ctx, "user-1", a.ID, decimal.NewFromInt(650))
	require.True(t, out.Successful, out.Message)

	got, err := svc.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(100)))
}

func TestWithdraw_FailureKeepsKind(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	a, err := svc.CreateAccount(ctx, "user-1", decimal.NewFromInt(500))
	require.NoError(t, err)

	out := svc.Withdraw(ctx, "user-1", a.ID, decimal.NewFromInt(500))
	require.False(t, out.Successful)
	assert.ErrorIs(t, out.Err, account.ErrMinimumBalance)
	assert.NotEmpty(t, out.Message)
}
