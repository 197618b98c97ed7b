package webapi

import (
	"github.com/amirasaad/bankledger/pkg/domain/user"
	usersvc "github.com/amirasaad/bankledger/pkg/service/user"
	"github.com/gofiber/fiber/v2"
)

// UserRoutes registers the user directory endpoints.
func UserRoutes(app *fiber.App, svc *usersvc.Service) {
	app.Post("/user", CreateUser(svc))
	app.Get("/user", ListUsers(svc))
	app.Get("/user/:id", GetUser(svc))
	app.Delete("/user/:id", DeleteUser(svc))
}

// CreateUser registers a new user from the request payload.
func CreateUser(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[CreateUserRequest](c)
		if input == nil {
			return err
		}
		u, err := svc.CreateUser(c.Context(), user.User{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
			Phone:     input.Phone,
			PromoCode: input.PromoCode,
			Password:  input.Password,
		})
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Couldn't create user", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Created user", u)
	}
}

// GetUser retrieves a user by id.
func GetUser(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.GetUser(c.Context(), c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "User not found", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "User found", u)
	}
}

// ListUsers returns all users.
func ListUsers(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.ListUsers(c.Context())
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Couldn't list users", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Users", users)
	}
}

// DeleteUser removes a user by id.
func DeleteUser(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deleted, err := svc.DeleteUser(c.Context(), c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Couldn't delete user", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Delete user", DeleteResponse{Successful: deleted})
	}
}
