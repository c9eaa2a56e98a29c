package http

import (
	"wealthpath-finance/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
)

// Register mounts every route. idempotency guards the mutating debt routes;
// nil disables it (no Redis configured).
func Register(e *echo.Echo, h *Handler, calc *CalculatorHandler, debts *DebtHandler, idempotency echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api")

	cg := api.Group("/calculator")
	cg.POST("", calc.Calculate)
	cg.POST("/loan", calc.Loan)
	cg.POST("/savings", calc.Savings)
	cg.POST("/payoff", calc.Payoff)
	cg.POST("/payoff/compare", calc.Compare)

	// stateless, so no user scope
	api.GET("/debts/calculator", debts.InterestCalculator)

	dg := api.Group("/debts", middleware.RequireUser())
	mutating := []echo.MiddlewareFunc{}
	if idempotency != nil {
		mutating = append(mutating, idempotency)
	}
	dg.POST("", debts.Create, mutating...)
	dg.GET("", debts.List)
	dg.GET("/payoff-plan", debts.PlanAll)
	dg.GET("/:debt_id", debts.Get)
	dg.PUT("/:debt_id", debts.Update, mutating...)
	dg.DELETE("/:debt_id", debts.Delete, mutating...)
	dg.POST("/:debt_id/payment", debts.MakePayment, mutating...)
	dg.GET("/:debt_id/payoff-plan", debts.PayoffPlan)
}
