// Package account defines the bank account entity and the balance policy the
// ledger enforces on it.
//
// Invariants:
//   - The balance never drops below the minimum floor through a withdrawal.
//   - A single withdrawal never removes more than 90% of the balance at the
//     time of the request.
//   - A single deposit is positive and never exceeds the deposit ceiling.
//   - Account and routing numbers are unique across the whole ledger.
package account

import (
	"errors"
	"fmt"

	"github.com/amirasaad/bankledger/pkg/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when no account matches the requested
	// id, or the requested user/account pair.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAmount is returned when an amount violates a numeric bound
	// (opening balance range, deposit range, non-positive withdrawal).
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrMinimumBalance is returned when a withdrawal would leave less than
	// the minimum balance on the account.
	ErrMinimumBalance = errors.New("balance may not drop below the minimum of 100")

	// ErrWithdrawalCapExceeded is returned when a single withdrawal asks for
	// more than 90% of the current balance.
	ErrWithdrawalCapExceeded = errors.New("cannot withdraw more than 90% of the balance")

	// ErrNumberSpaceExhausted is returned when the ledger cannot allocate a
	// free account or routing number within the attempt budget. This is an
	// internal invariant violation, not a caller mistake.
	ErrNumberSpaceExhausted = errors.New("unable to allocate a unique number")
)

// Balance policy. Amounts are decimals to keep money math exact across
// repeated deposits and withdrawals.
var (
	// MinBalance is the floor every account keeps at all times.
	MinBalance = decimal.NewFromInt(100)
	// MaxOpeningBalance caps the balance an account may be opened with.
	MaxOpeningBalance = decimal.NewFromInt(1000)
	// MinTransaction is the smallest accepted deposit or withdrawal.
	MinTransaction = decimal.NewFromInt(1)
	// MaxDeposit caps a single deposit.
	MaxDeposit = decimal.NewFromInt(10000)
	// WithdrawalCapRatio is the share of the balance a single withdrawal may
	// take at most.
	WithdrawalCapRatio = decimal.NewFromFloat(0.9)
)

// Account is a user's bank account. The owning ledger assigns the account and
// routing numbers and guards all mutations; Account itself only knows the
// balance rules.
type Account struct {
	domain.Entity
	AccountNumber string          `json:"accountNumber"`
	RoutingNumber string          `json:"routingNumber"`
	Balance       decimal.Decimal `json:"balance"`
	UserID        string          `json:"userId"`
}

// New validates the opening balance and constructs an account for the given
// user. Account and routing numbers are left empty; the ledger assigns them
// while it holds the collection lock so uniqueness and reservation are one
// atomic step.
func New(userID string, balance decimal.Decimal) (*Account, error) {
	if balance.LessThan(MinBalance) || balance.GreaterThan(MaxOpeningBalance) {
		return nil, fmt.Errorf(
			"%w: initial balance must be between %s and %s, got %s",
			ErrInvalidAmount, MinBalance, MaxOpeningBalance, balance,
		)
	}
	return &Account{
		Entity:  domain.NewEntity(),
		Balance: balance,
		UserID:  userID,
	}, nil
}

// ValidateDeposit checks the deposit amount bounds without touching any
// account state, so callers can report a bad amount before looking up the
// account.
func ValidateDeposit(amount decimal.Decimal) error {
	if amount.LessThan(MinTransaction) {
		return fmt.Errorf("%w: deposit amount must be at least %s, got %s",
			ErrInvalidAmount, MinTransaction, amount)
	}
	if amount.GreaterThan(MaxDeposit) {
		return fmt.Errorf("%w: cannot deposit more than %s, got %s",
			ErrInvalidAmount, MaxDeposit, amount)
	}
	return nil
}

// ValidateWithdrawal checks the stateless withdrawal amount bound.
func ValidateWithdrawal(amount decimal.Decimal) error {
	if amount.LessThan(MinTransaction) {
		return fmt.Errorf("%w: withdrawal amount must be at least %s, got %s",
			ErrInvalidAmount, MinTransaction, amount)
	}
	return nil
}

// Deposit adds amount to the balance after checking the deposit bounds.
// The caller must hold the ledger lock for the read-check-write to be atomic.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := ValidateDeposit(amount); err != nil {
		return err
	}
	a.Balance = a.Balance.Add(amount)
	a.Touch()
	return nil
}

// Withdraw subtracts amount from the balance after checking the withdrawal
// rules. The minimum-balance floor is checked before the 90% cap, so a
// request that violates both reports the floor violation.
// The caller must hold the ledger lock.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := ValidateWithdrawal(amount); err != nil {
		return err
	}
	if a.Balance.Sub(amount).LessThan(MinBalance) {
		return fmt.Errorf("%w: withdrawal rejected", ErrMinimumBalance)
	}
	if amount.GreaterThan(a.Balance.Mul(WithdrawalCapRatio)) {
		return fmt.Errorf("%w: withdrawal rejected", ErrWithdrawalCapExceeded)
	}
	a.Balance = a.Balance.Sub(amount)
	a.Touch()
	return nil
}
