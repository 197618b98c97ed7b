package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/amirasaad/bankledger/pkg/domain"
	"github.com/amirasaad/bankledger/pkg/domain/user"
	"github.com/amirasaad/bankledger/pkg/utils"
)

// UserStore is the in-memory user directory. It enforces one account per
// identity: no two users share an email or a phone number. All results have
// the credential fields scrubbed.
type UserStore struct {
	mu    sync.Mutex
	users []*user.User
}

// NewUserStore returns an empty directory.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Create registers the candidate. The duplicate check and the insert happen
// under the collection lock, so two concurrent registrations with the same
// identity cannot both pass. Email and phone are compared byte for byte.
func (s *UserStore) Create(_ context.Context, candidate user.User) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == candidate.Email || u.Phone == candidate.Phone {
			return nil, user.ErrDuplicateIdentity
		}
	}

	hash, err := utils.HashPassword(candidate.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := candidate
	u.Entity = domain.NewEntity()
	u.Username = u.Email
	u.PasswordHash = hash
	u.Password = ""
	u.IsEmailVerified = true
	u.IsPhoneVerified = true
	s.users = append(s.users, &u)

	cp := u.Scrubbed()
	return &cp, nil
}

// FetchByID returns a scrubbed snapshot of the user with the given id.
func (s *UserStore) FetchByID(_ context.Context, id string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			cp := u.Scrubbed()
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", user.ErrUserNotFound, id)
}

// Fetch returns scrubbed snapshots of all users in insertion order.
func (s *UserStore) Fetch(_ context.Context) ([]*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*user.User, 0, len(s.users))
	for _, u := range s.users {
		cp := u.Scrubbed()
		out = append(out, &cp)
	}
	return out, nil
}

// Delete removes the user outright and reports whether one existed. Accounts
// owned by the user are not cascade-deleted; the ledger holds a non-owning
// reference only.
func (s *UserStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = slices.Delete(s.users, i, i+1)
			return true, nil
		}
	}
	return false, nil
}
