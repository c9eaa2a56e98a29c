// Package cli implements the fincalc command line. It runs the calculator
// without the HTTP service and prints the same JSON documents as the API.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"wealthpath-finance/internal/domain/finance"
	"wealthpath-finance/internal/infrastructure/logging"
	"wealthpath-finance/internal/usecase/calculator"

	"github.com/spf13/cobra"
)

// Execute is the main entry point called from main.go.
func Execute() {
	if err := NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", Describe(err))
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Results go to out, logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "fincalc",
		Short:         "Loan, savings and debt payoff calculator",
		Long:          "Amortize loans, project savings and plan debt payoff (avalanche or snowball).",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	newUsecase := func() *calculator.Usecase {
		log := logging.Component(logging.New(errOut, logging.ParseLevel(logLevel)), logging.ComponentCalculator)
		return calculator.NewUsecase(nil, 0, log)
	}

	root.AddCommand(
		newLoanCmd(newUsecase),
		newSavingsCmd(newUsecase),
		newPayoffCmd(newUsecase),
	)
	return root
}

type usecaseFactory func() *calculator.Usecase

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Describe renders engine errors for a terminal.
func Describe(err error) string {
	var (
		ie *finance.InvalidInputError
		be *finance.InsufficientBudgetError
		he *finance.PayoffHorizonExceededError
	)
	switch {
	case errors.As(err, &ie):
		return fmt.Sprintf("%s %s", ie.Field, ie.Reason)
	case errors.As(err, &be):
		return fmt.Sprintf("monthly budget %.2f is below the %.2f needed for minimum payments", be.Budget, be.Required)
	case errors.As(err, &he):
		return fmt.Sprintf("debts are not paid off within %d months at this budget", he.Months)
	}
	return err.Error()
}
