package cli

import (
	"wealthpath-finance/internal/usecase/calculator"

	"github.com/spf13/cobra"
)

func newLoanCmd(newUsecase usecaseFactory) *cobra.Command {
	var req calculator.LoanRequest

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Amortize a fixed-rate loan",
		Example: `  fincalc loan --principal 10000 --rate 5 --term 36
  fincalc loan --principal 250000 --rate 6.5 --term 360 --schedule`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newUsecase().Loan(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().Float64Var(&req.Principal, "principal", 0, "Amount borrowed")
	cmd.Flags().Float64Var(&req.AnnualRate, "rate", 0, "Annual interest rate in percent (5.5 = 5.5%)")
	cmd.Flags().IntVar(&req.TermMonths, "term", 0, "Term in months")
	cmd.Flags().BoolVar(&req.WithSchedule, "schedule", false, "Include the month-by-month amortization plan")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("term")
	return cmd
}
