// Package repository defines the contracts the service layer depends on.
// Implementations own the collections and must keep the documented invariants
// under concurrent access; see infra/repository/memory for the in-memory one.
package repository

import (
	"context"

	"github.com/amirasaad/bankledger/pkg/domain"
	"github.com/amirasaad/bankledger/pkg/domain/account"
	"github.com/amirasaad/bankledger/pkg/domain/user"
	"github.com/shopspring/decimal"
)

// UserRepository is the authoritative directory of registered users.
// Every User it returns has the credential fields scrubbed.
type UserRepository interface {
	// Create registers the candidate. It fails with user.ErrDuplicateIdentity
	// when the email or phone is already taken.
	Create(ctx context.Context, candidate user.User) (*user.User, error)
	// FetchByID fails with user.ErrUserNotFound when no user has the id.
	FetchByID(ctx context.Context, id string) (*user.User, error)
	// Fetch returns all users in insertion order.
	Fetch(ctx context.Context) ([]*user.User, error)
	// Delete removes the user and reports whether one existed.
	Delete(ctx context.Context, id string) (bool, error)
}

// AccountRepository is the authoritative ledger of bank accounts and the
// balance rules governing them.
type AccountRepository interface {
	// Create opens an account for the user with the given initial balance,
	// assigning fresh unique account and routing numbers.
	Create(ctx context.Context, userID string, balance decimal.Decimal) (*account.Account, error)
	// FetchByID fails with account.ErrAccountNotFound when absent.
	FetchByID(ctx context.Context, id string) (*account.Account, error)
	// Fetch returns all accounts in insertion order.
	Fetch(ctx context.Context) ([]*account.Account, error)
	// Delete removes the account and reports whether one existed.
	Delete(ctx context.Context, id string) (bool, error)
	// Deposit atomically adds amount to the account owned by userID.
	Deposit(ctx context.Context, userID, accountID string, amount decimal.Decimal) domain.Outcome
	// Withdraw atomically subtracts amount, subject to the minimum-balance
	// floor and the 90% cap.
	Withdraw(ctx context.Context, userID, accountID string, amount decimal.Decimal) domain.Outcome
}
