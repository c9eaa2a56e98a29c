package http

import (
	"log/slog"
	"net/http"

	"wealthpath-finance/internal/infrastructure/logging"
	"wealthpath-finance/internal/usecase/calculator"

	"github.com/labstack/echo/v4"
)

type CalculatorHandler struct {
	uc  *calculator.Usecase
	log *slog.Logger
}

func NewCalculatorHandler(uc *calculator.Usecase, log *slog.Logger) *CalculatorHandler {
	return &CalculatorHandler{uc: uc, log: log}
}

func (h *CalculatorHandler) Calculate(c echo.Context) error {
	var req calculator.CalculateRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	h.log.DebugContext(c.Request().Context(), "calculate", logging.FieldMode, req.Mode)
	dto, err := h.uc.Calculate(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CalculatorHandler) Loan(c echo.Context) error {
	var req calculator.LoanRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Loan(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CalculatorHandler) Savings(c echo.Context) error {
	var req calculator.SavingsRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Savings(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CalculatorHandler) Payoff(c echo.Context) error {
	var req calculator.PayoffRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Payoff(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CalculatorHandler) Compare(c echo.Context) error {
	var req calculator.PayoffRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Compare(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
