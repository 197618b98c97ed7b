package webapi

import (
	"errors"

	"github.com/amirasaad/bankledger/pkg/domain/account"
	"github.com/amirasaad/bankledger/pkg/domain/user"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Response is the standard API envelope for success cases.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseJSON writes an RFC 9457 problem response.
func ErrorResponseJSON(c *fiber.Ctx, status int, title string, detail any) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	pd.Instance = c.OriginalURL()
	c.Set(fiber.HeaderContentType, "application/problem+json")

	return c.Status(status).JSON(pd)
}

// ErrorToStatusCode maps ledger error kinds to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, account.ErrAccountNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, user.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, account.ErrInvalidAmount):
		return fiber.StatusBadRequest
	case errors.Is(err, account.ErrMinimumBalance):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, account.ErrWithdrawalCapExceeded):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, user.ErrDuplicateIdentity):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it. On failure an
// error response is already written and a nil pointer returned.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validate.Struct(input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
	}
	return &input, nil
}
