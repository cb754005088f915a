package output

import (
	"fmt"

	"github.com/wealthcoach/wealthcoach/internal/domain"
)

// DefaultAssumptions lists the modeling assumptions shared by every plan.
var DefaultAssumptions = []string{
	"Returns compound monthly at one twelfth of the annual rate",
	"Each month the balance grows first and the contribution is added after",
	"Fees are subtracted from the gross return; net and real rates never go below zero",
	"Real values use the net return minus inflation",
	"Scenarios shift the net return by 3 percentage points each way",
}

// GenerateAssumptions adds the plan-specific rates to the shared assumptions.
func GenerateAssumptions(r *domain.PlanReport) []string {
	out := append([]string(nil), DefaultAssumptions...)
	out = append(out,
		fmt.Sprintf("Net return: %.2f%% (%.2f%% gross - %.2f%% fees)", r.NetReturnPct, r.Plan.AnnualReturnPct, r.Plan.AnnualFeePct),
		fmt.Sprintf("Real return: %.2f%% after %.2f%% inflation", r.RealReturnPct, r.Plan.AnnualInflationPct),
	)
	if r.Plan.AnnualContributionGrowthPct > 0 {
		out = append(out, fmt.Sprintf("Indexed contribution rises %.2f%% at the start of each year after the first", r.Plan.AnnualContributionGrowthPct))
	}
	return out
}
