package webapi

import "github.com/shopspring/decimal"

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	PromoCode string `json:"promoCode"`
	Password  string `json:"password" validate:"required,min=8"`
}

// CreateAccountRequest is the payload for opening an account. A zero or
// omitted amount opens the account with the default balance.
type CreateAccountRequest struct {
	UserID string          `json:"userId" validate:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// TransactionRequest is the payload for deposits and withdrawals.
type TransactionRequest struct {
	UserID    string          `json:"userId" validate:"required"`
	AccountID string          `json:"accountId" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

// DeleteResponse reports whether a delete removed anything.
type DeleteResponse struct {
	Successful bool `json:"successful"`
}
