// Package account provides the business-facing surface for ledger
// operations, adding structured logging around the repository.
package account

import (
	"context"
	"log/slog"

	"github.com/amirasaad/bankledger/pkg/domain"
	"github.com/amirasaad/bankledger/pkg/domain/account"
	"github.com/amirasaad/bankledger/pkg/repository"
	"github.com/shopspring/decimal"
)

// DefaultOpeningBalance is used when a caller opens an account without
// specifying an amount.
var DefaultOpeningBalance = decimal.NewFromInt(100)

// Service exposes ledger operations to the API layer.
type Service struct {
	accounts repository.AccountRepository
	logger   *slog.Logger
}

// New creates an account Service.
func New(accounts repository.AccountRepository, logger *slog.Logger) *Service {
	return &Service{accounts: accounts, logger: logger}
}

// CreateAccount opens an account for the user. A zero balance means the
// default opening balance. The ledger takes the user id on trust; it holds a
// non-owning reference and does not check the directory.
func (s *Service) CreateAccount(
	ctx context.Context,
	userID string,
	balance decimal.Decimal,
) (*account.Account, error) {
	if balance.IsZero() {
		balance = DefaultOpeningBalance
	}
	a, err := s.accounts.Create(ctx, userID, balance)
	if err != nil {
		s.logger.Warn("account creation rejected", "user_id", userID, "error", err)
		return nil, err
	}
	s.logger.Info("account created",
		"account_id", a.ID, "user_id", userID, "account_number", a.AccountNumber)
	return a, nil
}

// GetAccount retrieves an account by id.
func (s *Service) GetAccount(ctx context.Context, id string) (*account.Account, error) {
	return s.accounts.FetchByID(ctx, id)
}

// ListAccounts returns all accounts in insertion order.
func (s *Service) ListAccounts(ctx context.Context) ([]*account.Account, error) {
	return s.accounts.Fetch(ctx)
}

// DeleteAccount removes an account and reports whether one existed.
func (s *Service) DeleteAccount(ctx context.Context, id string) (bool, error) {
	deleted, err := s.accounts.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info("account deleted", "account_id", id)
	}
	return deleted, nil
}

// Deposit adds amount to the account owned by userID.
func (s *Service) Deposit(
	ctx context.Context,
	userID, accountID string,
	amount decimal.Decimal,
) domain.Outcome {
	out := s.accounts.Deposit(ctx, userID, accountID, amount)
	if !out.Successful {
		s.logger.Warn("deposit rejected",
			"user_id", userID, "account_id", accountID, "error", out.Err)
		return out
	}
	s.logger.Info("deposit accepted", "user_id", userID, "account_id", accountID)
	return out
}

// Withdraw subtracts amount from the account owned by userID, subject to the
// balance policy.
func (s *Service) Withdraw(
	ctx context.Context,
	userID, accountID string,
	amount decimal.Decimal,
) domain.Outcome {
	out := s.accounts.Withdraw(ctx, userID, accountID, amount)
	if !out.Successful {
		s.logger.Warn("withdrawal rejected",
			"user_id", userID, "account_id", accountID, "error", out.Err)
		return out
	}
	s.logger.Info("withdrawal accepted", "user_id", userID, "account_id", accountID)
	return out
}
