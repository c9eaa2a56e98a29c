package http

import (
	"log/slog"
	"net/http"

	"wealthpath-finance/internal/adapter/middleware"
	"wealthpath-finance/internal/usecase/calculator"
	"wealthpath-finance/internal/usecase/debt"

	"github.com/labstack/echo/v4"
)

type DebtHandler struct {
	uc   *debt.Usecase
	calc *calculator.Usecase
	log  *slog.Logger
}

func NewDebtHandler(uc *debt.Usecase, calc *calculator.Usecase, log *slog.Logger) *DebtHandler {
	return &DebtHandler{uc: uc, calc: calc, log: log}
}

type planAllReq struct {
	MonthlyBudget float64 `query:"monthlyBudget" validate:"gte=0"`
	Strategy      string  `query:"strategy" validate:"omitempty,strategy"`
}

type payoffPlanReq struct {
	MonthlyPayment float64 `query:"monthlyPayment" validate:"gte=0"`
}

func (h *DebtHandler) Create(c echo.Context) error {
	var req debt.CreateDebtInput
	if ok, err := bind(c, &req); !ok {
		return err
	}
	req.UserID = middleware.UserID(c)
	dto, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DebtHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"debts": list})
}

func (h *DebtHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), middleware.UserID(c), c.Param("debt_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DebtHandler) Update(c echo.Context) error {
	var req debt.UpdateDebtInput
	if ok, err := bind(c, &req); !ok {
		return err
	}
	req.UserID = middleware.UserID(c)
	req.DebtID = c.Param("debt_id")
	dto, err := h.uc.Update(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DebtHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), middleware.UserID(c), c.Param("debt_id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DebtHandler) MakePayment(c echo.Context) error {
	var req debt.PaymentInput
	if ok, err := bind(c, &req); !ok {
		return err
	}
	req.UserID = middleware.UserID(c)
	req.DebtID = c.Param("debt_id")
	dto, err := h.uc.MakePayment(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DebtHandler) PayoffPlan(c echo.Context) error {
	var req payoffPlanReq
	if ok, err := bind(c, &req); !ok {
		return err
	}
	dto, err := h.uc.PayoffPlan(c.Request().Context(), debt.PayoffPlanInput{
		UserID:         middleware.UserID(c),
		DebtID:         c.Param("debt_id"),
		MonthlyPayment: req.MonthlyPayment,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DebtHandler) PlanAll(c echo.Context) error {
	var req planAllReq
	if ok, err := bind(c, &req); !ok {
		return err
	}
	dto, err := h.uc.PlanAll(c.Request().Context(), debt.PlanAllInput{
		UserID:        middleware.UserID(c),
		MonthlyBudget: req.MonthlyBudget,
		Strategy:      req.Strategy,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// InterestCalculator needs no stored data; it lives under /api/debts for
// existing clients.
func (h *DebtHandler) InterestCalculator(c echo.Context) error {
	var req calculator.InterestCalculatorRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	dto, err := h.calc.InterestCalculator(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
