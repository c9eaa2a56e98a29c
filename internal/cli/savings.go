package cli

import (
	"wealthpath-finance/internal/usecase/calculator"

	"github.com/spf13/cobra"
)

func newSavingsCmd(newUsecase usecaseFactory) *cobra.Command {
	var req calculator.SavingsRequest

	cmd := &cobra.Command{
		Use:     "savings",
		Short:   "Project savings growth year by year",
		Example: "  fincalc savings --initial 1000 --contribution 200 --rate 4 --years 10",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newUsecase().Savings(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().Float64Var(&req.InitialAmount, "initial", 0, "Starting balance")
	cmd.Flags().Float64Var(&req.MonthlyContribution, "contribution", 0, "Deposit added at the end of each month")
	cmd.Flags().Float64Var(&req.AnnualRate, "rate", 0, "Annual interest rate in percent")
	cmd.Flags().IntVar(&req.Years, "years", 0, "Projection length in years")
	_ = cmd.MarkFlagRequired("years")
	return cmd
}
