// Package user defines the registered user entity and its identity rules.
package user

import (
	"errors"

	"github.com/amirasaad/bankledger/pkg/domain"
)

var (
	// ErrUserNotFound is returned when no user matches the requested id.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateIdentity is returned when a candidate's email or phone is
	// already registered. Duplicates are always rejected; the existing user
	// is never returned silently.
	ErrDuplicateIdentity = errors.New("a user with this email or phone already exists")
)

// User is a registered user of the ledger.
//
// Password is a transient input: it is cleared as soon as PasswordHash is
// computed and is never stored. PasswordHash is the only durable credential
// representation and is scrubbed from every result handed to callers.
type User struct {
	domain.Entity
	Username        string `json:"username"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PromoCode       string `json:"promoCode"`
	Password        string `json:"-"`
	PasswordHash    string `json:"-"`
	IsLocked        bool   `json:"isLocked"`
	IsPhoneVerified bool   `json:"isPhoneVerified"`
	IsEmailVerified bool   `json:"isEmailVerified"`
}

// Scrubbed returns a copy safe to hand to callers: the credential fields are
// emptied so neither the hash nor the plaintext ever leaves the directory.
func (u User) Scrubbed() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}
