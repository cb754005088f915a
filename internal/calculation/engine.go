package calculation

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/shopspring/decimal"
	"github.com/wealthcoach/wealthcoach/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ProjectionEngine evaluates plans. It holds no per-request state and is safe
// for concurrent use once configured.
type ProjectionEngine struct {
	SolverIterations int       // bisection steps for the required-contribution solver
	TipRules         []TipRule // coaching rules, evaluated in order
	Concurrency      int       // max plans evaluated at once by EvaluatePlans; <=0 means GOMAXPROCS
	Debug            bool      // log per-plan calculation details
	Logger           Logger
}

// NewProjectionEngine creates an engine with default solver settings and tips.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		SolverIterations: DefaultSolverIterations,
		TipRules:         DefaultTipRules,
		Logger:           NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	pe.Logger = orNop(l)
}

// RequiredMonthly solves for the contribution that reaches target, logging
// when the starting search bracket had to be widened.
func (pe *ProjectionEngine) RequiredMonthly(target float64, years int, netReturnPct float64) SolverResult {
	iterations := pe.SolverIterations
	if iterations <= 0 {
		iterations = DefaultSolverIterations
	}
	res := SolveRequiredMonthly(target, years, netReturnPct, iterations)
	log := orNop(pe.Logger)
	if res.BoundDoublings > 0 {
		log.Warnf("required-monthly upper bound widened %d times (target=%.2f years=%d rate=%.2f%%)",
			res.BoundDoublings, target, years, netReturnPct)
	}
	if !res.Reachable {
		log.Errorf("required-monthly bracket never reached target %.2f; result is an underestimate", target)
	}
	return res
}

// EvaluatePlan runs every projection for a single plan.
func (pe *ProjectionEngine) EvaluatePlan(ctx context.Context, plan *domain.Plan) (*domain.PlanReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("%w: plan is required", domain.ErrInvalidPlan)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	log := orNop(pe.Logger)

	effective := *plan
	report := &domain.PlanReport{Name: plan.DisplayName("Plan")}

	if plan.Budget != nil {
		summary := EvaluateBudget(*plan.Budget)
		report.Budget = &summary
		if plan.UseSafeAvailable {
			effective.MonthlyContribution = summary.SafeAvailable
		}
	}
	report.Plan = effective

	years := effective.HorizonYears
	monthly := effective.MonthlyContribution
	net := NetReturn(effective.AnnualReturnPct, effective.AnnualFeePct)
	realRate := RealReturn(net, effective.AnnualInflationPct)
	report.NetReturnPct = net
	report.RealReturnPct = realRate

	report.Nominal = Simulate(monthly, years, net)
	report.Real = Simulate(monthly, years, realRate)
	report.Indexed = SimulateIndexed(monthly, years, net, effective.AnnualContributionGrowthPct)
	report.Scenarios = Scenarios(monthly, years, net)

	if err := checkFiniteProjection(report); err != nil {
		return nil, err
	}

	totalContrib := decimal.NewFromFloat(monthly).Mul(decimal.NewFromInt(int64(years * 12)))
	report.TotalContributions = totalContrib
	report.FinalNominal = decimal.NewFromFloat(report.Nominal.Final())
	report.FinalReal = decimal.NewFromFloat(report.Real.Final())
	report.FinalIndexed = decimal.NewFromFloat(report.Indexed.Final())
	report.Growth = report.FinalNominal.Sub(totalContrib)

	if effective.HasGoal() {
		goal := MonthToHit(report.Nominal, effective.Target)
		report.Goal = &goal
		report.RequiredMonthly = decimal.NewFromFloat(pe.RequiredMonthly(effective.Target, years, net).Monthly)
	}

	rules := pe.TipRules
	if rules == nil {
		rules = DefaultTipRules
	}
	report.Tips = GenerateTips(TipInput{
		MonthlyContribution:         monthly,
		HorizonYears:                years,
		NetReturnPct:                net,
		AnnualInflationPct:          effective.AnnualInflationPct,
		AnnualFeePct:                effective.AnnualFeePct,
		AnnualContributionGrowthPct: effective.AnnualContributionGrowthPct,
	}, rules)

	if pe.Debug {
		log.Debugf("PLAN %q: monthly=%.2f years=%d net=%.2f%% real=%.2f%%", report.Name, monthly, years, net, realRate)
		log.Debugf("  final nominal=%s real=%s indexed=%s contributions=%s",
			report.FinalNominal.StringFixed(2), report.FinalReal.StringFixed(2),
			report.FinalIndexed.StringFixed(2), totalContrib.StringFixed(2))
		if report.Goal != nil {
			log.Debugf("  goal reached=%t month=%d required monthly=%s",
				report.Goal.Reached, report.Goal.Month, report.RequiredMonthly.StringFixed(2))
		}
	}

	return report, nil
}

// checkFiniteProjection rejects plans whose rates push a balance past the float64
// range. Such balances cannot be reported as decimals.
func checkFiniteProjection(r *domain.PlanReport) error {
	finals := map[string]float64{
		"nominal": r.Nominal.Final(),
		"real":    r.Real.Final(),
		"indexed": r.Indexed.Final(),
	}
	for _, s := range r.Scenarios {
		finals[string(s.Kind)+" scenario"] = s.FinalBalance
	}
	for name, v := range finals {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Errorf("%w: %s balance overflows; lower the return or contribution growth rate", domain.ErrInvalidPlan, name)
		}
	}
	return nil
}

// EvaluatePlans evaluates plans concurrently and returns the reports in input
// order. The first failure cancels the remaining work.
func (pe *ProjectionEngine) EvaluatePlans(ctx context.Context, plans []domain.Plan) (*domain.BatchReport, error) {
	reports := make([]domain.PlanReport, len(plans))

	limit := pe.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range plans {
		plan := plans[i]
		if plan.Name == "" {
			plan.Name = fmt.Sprintf("Plan %d", i+1)
		}
		g.Go(func() error {
			report, err := pe.EvaluatePlan(gctx, &plan)
			if err != nil {
				return fmt.Errorf("plan %q: %w", plan.Name, err)
			}
			reports[i] = *report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	orNop(pe.Logger).Infof("evaluated %d plan(s)", len(plans))
	return &domain.BatchReport{GeneratedAt: nowFunc(), Reports: reports}, nil
}

// EvaluatePlanFile evaluates every plan in a loaded plan file.
func (pe *ProjectionEngine) EvaluatePlanFile(ctx context.Context, file *domain.PlanFile) (*domain.BatchReport, error) {
	if file == nil || len(file.Plans) == 0 {
		return nil, fmt.Errorf("%w: no plans provided", domain.ErrInvalidPlan)
	}
	batch, err := pe.EvaluatePlans(ctx, file.Plans)
	if err != nil {
		return nil, err
	}
	batch.Currency = file.Currency
	return batch, nil
}
