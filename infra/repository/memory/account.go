// Package memory implements the repositories as process-lifetime in-memory
// collections. Each store owns a single mutex guarding its collection, so the
// existence check and the insert of every structural operation are one atomic
// step, and deposits/withdrawals read, check and write the balance without
// interleaving.
package memory

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/amirasaad/bankledger/pkg/domain"
	"github.com/amirasaad/bankledger/pkg/domain/account"
	"github.com/shopspring/decimal"
)

const (
	// Number spaces match the issuing convention: routing numbers are drawn
	// from an 8-digit space, account numbers from a 10-digit space.
	routingNumberSpace = 100_000_000
	accountNumberSpace = 10_000_000_000

	// maxNumberAttempts bounds the rejection-sampling loop so a full number
	// space surfaces as an error instead of spinning forever.
	maxNumberAttempts = 1_000
)

// AccountStore is the in-memory account ledger. Accounts are kept in
// insertion order; all reads return copies so callers cannot mutate internal
// state behind the lock.
type AccountStore struct {
	mu       sync.Mutex
	accounts []*account.Account
}

// NewAccountStore returns an empty ledger.
func NewAccountStore() *AccountStore {
	return &AccountStore{}
}

// Create opens an account for the user. The number generation, uniqueness
// check and insert all happen under the collection lock, so two concurrent
// creations can never be handed the same number.
func (s *AccountStore) Create(
	_ context.Context,
	userID string,
	balance decimal.Decimal,
) (*account.Account, error) {
	a, err := account.New(userID, balance)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a.AccountNumber, err = s.uniqueNumberLocked(accountNumberSpace,
		func(x *account.Account) string { return x.AccountNumber })
	if err != nil {
		return nil, err
	}
	a.RoutingNumber, err = s.uniqueNumberLocked(routingNumberSpace,
		func(x *account.Account) string { return x.RoutingNumber })
	if err != nil {
		return nil, err
	}

	s.accounts = append(s.accounts, a)
	cp := *a
	return &cp, nil
}

// FetchByID returns a snapshot of the account with the given id.
func (s *AccountStore) FetchByID(_ context.Context, id string) (*account.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", account.ErrAccountNotFound, id)
}

// Fetch returns snapshots of all accounts in insertion order.
func (s *AccountStore) Fetch(_ context.Context) ([]*account.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*account.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

// Delete removes the account outright and reports whether one existed.
// Deletion is hard for both collections; the active flag is not used as a
// tombstone.
func (s *AccountStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.accounts {
		if a.ID == id {
			s.accounts = slices.Delete(s.accounts, i, i+1)
			return true, nil
		}
	}
	return false, nil
}

// Deposit adds amount to the account owned by userID. Amount bounds are
// checked before the lookup so a bad amount is reported even when the account
// does not exist.
func (s *AccountStore) Deposit(
	_ context.Context,
	userID, accountID string,
	amount decimal.Decimal,
) domain.Outcome {
	if err := account.ValidateDeposit(amount); err != nil {
		return domain.Failure(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.findOwnedLocked(userID, accountID)
	if a == nil {
		return domain.Failure(fmt.Errorf(
			"%w: user %s has no account %s", account.ErrAccountNotFound, userID, accountID))
	}
	if err := a.Deposit(amount); err != nil {
		return domain.Failure(err)
	}
	return domain.Success(fmt.Sprintf(
		"deposited %s into account %s, new balance %s", amount, a.AccountNumber, a.Balance))
}

// Withdraw subtracts amount from the account owned by userID, subject to the
// minimum-balance floor and the 90% cap. The whole read-check-write runs
// under the collection lock.
func (s *AccountStore) Withdraw(
	_ context.Context,
	userID, accountID string,
	amount decimal.Decimal,
) domain.Outcome {
	if err := account.ValidateWithdrawal(amount); err != nil {
		return domain.Failure(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.findOwnedLocked(userID, accountID)
	if a == nil {
		return domain.Failure(fmt.Errorf(
			"%w: user %s has no account %s", account.ErrAccountNotFound, userID, accountID))
	}
	if err := a.Withdraw(amount); err != nil {
		return domain.Failure(err)
	}
	return domain.Success(fmt.Sprintf(
		"withdrew %s from account %s, new balance %s", amount, a.AccountNumber, a.Balance))
}

func (s *AccountStore) findOwnedLocked(userID, accountID string) *account.Account {
	for _, a := range s.accounts {
		if a.UserID == userID && a.ID == accountID {
			return a
		}
	}
	return nil
}

// uniqueNumberLocked draws numbers from the space until one is not already
// present in the ledger (rejection sampling), giving up after
// maxNumberAttempts.
func (s *AccountStore) uniqueNumberLocked(
	space int64,
	numberOf func(*account.Account) string,
) (string, error) {
	for range maxNumberAttempts {
		n := fmt.Sprintf("%d", rand.Int64N(space))
		if !slices.ContainsFunc(s.accounts, func(a *account.Account) bool {
			return numberOf(a) == n
		}) {
			return n, nil
		}
	}
	return "", account.ErrNumberSpaceExhausted
}
