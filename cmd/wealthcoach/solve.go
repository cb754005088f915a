package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"github.com/wealthcoach/wealthcoach/internal/calculation"
	"github.com/wealthcoach/wealthcoach/internal/domain"
	"github.com/wealthcoach/wealthcoach/internal/output"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		target float64
		years  int
		rate   float64
		fee    float64
	)

	cmd := &cobra.Command{
		Use:     "solve",
		Short:   "Find the monthly contribution that reaches a target",
		Example: `  wealthcoach solve --target 1000000 --years 10 --rate 7.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for name, v := range map[string]float64{"target": target, "rate": rate, "fee": fee} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("%w: %s must be a finite number", domain.ErrInvalidPlan, name)
				}
			}
			if target < 0 {
				return fmt.Errorf("%w: target cannot be negative", domain.ErrInvalidPlan)
			}
			if years < 1 || years > domain.MaxHorizonYears {
				return fmt.Errorf("%w: years must be between 1 and %d", domain.ErrInvalidPlan, domain.MaxHorizonYears)
			}
			if fee < 0 {
				return fmt.Errorf("%w: fee cannot be negative", domain.ErrInvalidPlan)
			}

			net := calculation.NetReturn(rate, fee)
			res := a.engine.RequiredMonthly(target, years, net)
			cur := a.settings.Output.Currency
			fmt.Fprintf(cmd.OutOrStdout(), "Required monthly contribution: %s\n", output.FormatAmount(res.Monthly, cur))
			fmt.Fprintf(cmd.OutOrStdout(), "  target %s over %d years at %s net\n",
				output.FormatAmount(target, cur), years, output.FormatPercentage(net))
			return nil
		},
	}
	cmd.Flags().Float64Var(&target, "target", 1_000_000, "target balance")
	cmd.Flags().IntVar(&years, "years", 10, "horizon in years")
	cmd.Flags().Float64Var(&rate, "rate", 7.5, "annual return, percent")
	cmd.Flags().Float64Var(&fee, "fee", 0, "annual fees subtracted from the rate, percent")
	return cmd
}
