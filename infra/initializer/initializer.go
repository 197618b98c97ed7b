// Package initializer wires the application together: logger, the in-memory
// stores, and the services built on top of them. The stores are constructed
// once here and passed by handle to whoever needs them, so tests can build
// isolated instances instead of sharing ambient state.
package initializer

import (
	"log/slog"

	"github.com/amirasaad/bankledger/infra/repository/memory"
	"github.com/amirasaad/bankledger/pkg/config"
	accountsvc "github.com/amirasaad/bankledger/pkg/service/account"
	usersvc "github.com/amirasaad/bankledger/pkg/service/user"
)

// Deps bundles everything the entrypoints need.
type Deps struct {
	Logger         *slog.Logger
	Config         *config.App
	UserService    *usersvc.Service
	AccountService *accountsvc.Service
}

// New builds the dependency graph for the given configuration.
func New(cfg *config.App) *Deps {
	logger := setupLogger(cfg.Log)

	users := memory.NewUserStore()
	accounts := memory.NewAccountStore()

	return &Deps{
		Logger:         logger,
		Config:         cfg,
		UserService:    usersvc.New(users, logger),
		AccountService: accountsvc.New(accounts, logger),
	}
}
