package http

import (
	"errors"
	"log/slog"
	"net/http"

	"wealthpath-finance/internal/domain/debt"
	"wealthpath-finance/internal/domain/finance"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Error codes carried in ErrorResponse.Error.
const (
	CodeInvalidBody           = "invalid_body"
	CodeInvalidInput          = "invalid_input"
	CodeInsufficientBudget    = "insufficient_budget"
	CodePayoffHorizonExceeded = "payoff_horizon_exceeded"
	CodeNotFound              = "not_found"
	CodeInternal              = "internal_error"
)

// bind decodes the request into dst and validates it. The returned error has
// already been written to the response.
func bind(c echo.Context, dst any) (bool, error) {
	if err := c.Bind(dst); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: CodeInvalidBody, Details: []FieldError{{Field: "_", Message: "malformed request"}}})
	}
	if err := c.Validate(dst); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: CodeInvalidInput, Details: ToFieldErrors(err)})
	}
	return true, nil
}

// writeError maps use case and engine errors onto the HTTP error contract.
func writeError(c echo.Context, log *slog.Logger, err error) error {
	var (
		ie *finance.InvalidInputError
		be *finance.InsufficientBudgetError
		he *finance.PayoffHorizonExceededError
		ve validator.ValidationErrors
	)
	switch {
	case errors.As(err, &ie):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: CodeInvalidInput, Details: []FieldError{{Field: ie.Field, Message: ie.Reason}}})
	case errors.As(err, &be):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: CodeInsufficientBudget, Details: []FieldError{{Field: "monthlyBudget", Message: be.Error()}}})
	case errors.As(err, &he):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: CodePayoffHorizonExceeded, Details: []FieldError{{Field: "_", Message: he.Error()}}})
	case errors.As(err, &ve):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: CodeInvalidInput, Details: ToFieldErrors(err)})
	case errors.Is(err, debt.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: CodeNotFound, Details: []FieldError{{Field: "debt_id", Message: err.Error()}}})
	case errors.Is(err, debt.ErrInvalidAmount), errors.Is(err, debt.ErrPaymentExceedsBalance):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: CodeInvalidInput, Details: []FieldError{{Field: "amount", Message: err.Error()}}})
	case errors.Is(err, debt.ErrAlreadyPaidOff):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: CodeInvalidInput, Details: []FieldError{{Field: "debt_id", Message: err.Error()}}})
	}
	log.ErrorContext(c.Request().Context(), "request failed", "path", c.Path(), "err", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: CodeInternal})
}
