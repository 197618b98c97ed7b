package webapi

import (
	accountsvc "github.com/amirasaad/bankledger/pkg/service/account"
	"github.com/gofiber/fiber/v2"
)

// AccountRoutes registers the account ledger endpoints.
func AccountRoutes(app *fiber.App, svc *accountsvc.Service) {
	app.Post("/account", CreateAccount(svc))
	app.Get("/account", ListAccounts(svc))
	app.Get("/account/:id", GetAccount(svc))
	app.Delete("/account/:id", DeleteAccount(svc))
	app.Post("/account/deposit", Deposit(svc))
	app.Post("/account/withdraw", Withdraw(svc))
}

// CreateAccount opens an account for a user.
func CreateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		a, err := svc.CreateAccount(c.Context(), input.UserID, input.Amount)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Couldn't create account", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Created account", a)
	}
}

// GetAccount retrieves an account by id.
func GetAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := svc.GetAccount(c.Context(), c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Account not found", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account found", a)
	}
}

// ListAccounts returns all accounts.
func ListAccounts(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := svc.ListAccounts(c.Context())
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Couldn't list accounts", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Accounts", accounts)
	}
}

// DeleteAccount removes an account by id.
func DeleteAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deleted, err := svc.DeleteAccount(c.Context(), c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Couldn't delete account", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Delete account", DeleteResponse{Successful: deleted})
	}
}

// Deposit adds money to an account.
func Deposit(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[TransactionRequest](c)
		if input == nil {
			return err
		}
		out := svc.Deposit(c.Context(), input.UserID, input.AccountID, input.Amount)
		if !out.Successful {
			return ErrorResponseJSON(c, ErrorToStatusCode(out.Err), "Deposit rejected", out.Message)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, out.Message, out)
	}
}

// Withdraw takes money out of an account.
func Withdraw(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[TransactionRequest](c)
		if input == nil {
			return err
		}
		out := svc.Withdraw(c.Context(), input.UserID, input.AccountID, input.Amount)
		if !out.Successful {
			return ErrorResponseJSON(c, ErrorToStatusCode(out.Err), "Withdrawal rejected", out.Message)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, out.Message, out)
	}
}
