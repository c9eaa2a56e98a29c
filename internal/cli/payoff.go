package cli

import (
	"fmt"
	"strings"

	"wealthpath-finance/internal/domain/finance"

	"github.com/spf13/cobra"
)

func newPayoffCmd(newUsecase usecaseFactory) *cobra.Command {
	var (
		flagFile     string
		flagBudget   float64
		flagStrategy string
		flagCompare  bool
	)

	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "Plan paying off several debts under one monthly budget",
		Long: `Simulate a shared monthly budget across the debts listed in a TOML file.
Avalanche pays the highest rate first, snowball the smallest balance first.
--budget and --strategy override the values in the file.`,
		Example: `  fincalc payoff --file debts.toml
  fincalc payoff --file debts.toml --budget 800 --strategy snowball
  fincalc payoff --file debts.toml --compare`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := LoadDebtFile(flagFile)
			if err != nil {
				return err
			}
			req := file.Request()
			if cmd.Flags().Changed("budget") {
				req.MonthlyBudget = flagBudget
			}
			if cmd.Flags().Changed("strategy") {
				req.Strategy = strings.ToLower(flagStrategy)
			}
			if req.Strategy == "" {
				req.Strategy = string(finance.Avalanche)
			}
			strategy, err := finance.ParseStrategy(req.Strategy)
			if err != nil {
				return err
			}
			req.Strategy = string(strategy)

			uc := newUsecase()
			if flagCompare {
				res, err := uc.Compare(cmd.Context(), req)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			}
			res, err := uc.Payoff(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "TOML file listing the debts")
	cmd.Flags().Float64Var(&flagBudget, "budget", 0, "Monthly budget shared by all debts")
	cmd.Flags().StringVar(&flagStrategy, "strategy", "", fmt.Sprintf("Payoff order: %s or %s", finance.Avalanche, finance.Snowball))
	cmd.Flags().BoolVar(&flagCompare, "compare", false, "Run both strategies and report the difference")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
