package calculation

import (
	"math"

	"github.com/wealthcoach/wealthcoach/internal/domain"
)

// ScenarioSpreadPct is the distance, in percentage points, between the base
// scenario and the conservative and optimistic ones.
const ScenarioSpreadPct = 3.0

// Scenarios compounds the contribution at three rates around netReturnPct and
// returns them in fixed order: conservative, base, optimistic. The conservative
// rate is floored at zero; the base rate is used as given.
func Scenarios(monthly float64, years int, netReturnPct float64) []domain.ScenarioResult {
	specs := []struct {
		kind  domain.ScenarioKind
		label string
		rate  float64
	}{
		{domain.ScenarioConservative, "Conservative", math.Max(0, netReturnPct-ScenarioSpreadPct)},
		{domain.ScenarioBase, "Base", netReturnPct},
		{domain.ScenarioOptimistic, "Optimistic", netReturnPct + ScenarioSpreadPct},
	}

	results := make([]domain.ScenarioResult, 0, len(specs))
	for _, s := range specs {
		results = append(results, domain.ScenarioResult{
			Kind:         s.kind,
			Label:        s.label,
			NetReturnPct: s.rate,
			FinalBalance: Simulate(monthly, years, s.rate).Final(),
		})
	}
	return results
}
