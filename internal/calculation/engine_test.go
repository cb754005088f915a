package calculation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthcoach/wealthcoach/internal/domain"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) record(level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Debugf(format string, args ...any) { r.record("DEBUG", format, args...) }
func (r *recordingLogger) Infof(format string, args ...any)  { r.record("INFO", format, args...) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.record("WARN", format, args...) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.record("ERROR", format, args...) }

func basePlan() domain.Plan {
	return domain.Plan{
		Name:                        "Base plan",
		MonthlyContribution:         500,
		HorizonYears:                10,
		AnnualReturnPct:             8,
		AnnualFeePct:                0.5,
		AnnualInflationPct:          5,
		AnnualContributionGrowthPct: 5,
		Target:                      1_000_000,
	}
}

func TestEvaluatePlan_FullReport(t *testing.T) {
	engine := NewProjectionEngine()
	plan := basePlan()

	report, err := engine.EvaluatePlan(context.Background(), &plan)
	require.NoError(t, err)

	assert.Equal(t, "Base plan", report.Name)
	assert.InDelta(t, 7.5, report.NetReturnPct, 1e-12)
	assert.InDelta(t, 2.5, report.RealReturnPct, 1e-12)
	assert.Equal(t, 120, report.Months())
	assert.Len(t, report.Real, 120)
	assert.Len(t, report.Indexed, 120)

	assert.Equal(t, Simulate(500, 10, 7.5), report.Nominal)
	assert.Equal(t, Simulate(500, 10, 2.5), report.Real)
	assert.Equal(t, SimulateIndexed(500, 10, 7.5, 5), report.Indexed)

	assert.True(t, report.TotalContributions.Equal(decimal.NewFromInt(60000)))
	assert.True(t, report.Growth.Equal(report.FinalNominal.Sub(report.TotalContributions)))
	assert.True(t, report.Growth.IsPositive())
	assert.True(t, report.FinalReal.LessThan(report.FinalNominal))
	assert.True(t, report.FinalIndexed.GreaterThan(report.FinalNominal))

	require.Len(t, report.Scenarios, 3)
	assert.Equal(t, domain.ScenarioBase, report.Scenarios[1].Kind)

	require.NotNil(t, report.Goal)
	assert.False(t, report.Goal.Reached, "500/month cannot reach a million in ten years")

	want := RequiredMonthly(1_000_000, 10, 7.5)
	assert.InDelta(t, want, report.RequiredMonthly.InexactFloat64(), 1e-6)

	assert.Equal(t, []string{"Index the contribution by 5%/year. It is one of the most powerful real-world levers."}, report.Tips)
}

func TestEvaluatePlan_NoGoalSkipsGoalQueries(t *testing.T) {
	engine := NewProjectionEngine()
	plan := basePlan()
	plan.Target = 0

	report, err := engine.EvaluatePlan(context.Background(), &plan)
	require.NoError(t, err)
	assert.Nil(t, report.Goal)
	assert.True(t, report.RequiredMonthly.IsZero())
}

func TestEvaluatePlan_GoalReached(t *testing.T) {
	engine := NewProjectionEngine()
	plan := basePlan()
	plan.Target = 50000

	report, err := engine.EvaluatePlan(context.Background(), &plan)
	require.NoError(t, err)
	require.NotNil(t, report.Goal)
	assert.True(t, report.Goal.Reached)
	assert.Equal(t, MonthToHit(report.Nominal, 50000).Month, report.Goal.Month)
	assert.True(t, report.RequiredMonthly.LessThan(decimal.NewFromInt(500)))
}

func TestEvaluatePlan_UsesSafeAvailableFromBudget(t *testing.T) {
	engine := NewProjectionEngine()
	plan := basePlan()
	plan.Budget = &domain.Budget{MonthlyIncome: 5000, MonthlyExpenses: 3500, BufferPct: 10}
	plan.UseSafeAvailable = true

	report, err := engine.EvaluatePlan(context.Background(), &plan)
	require.NoError(t, err)
	require.NotNil(t, report.Budget)
	assert.Equal(t, 1500.0, report.Budget.Available)
	assert.Equal(t, 1350.0, report.Budget.SafeAvailable)
	assert.Equal(t, 1350.0, report.Plan.MonthlyContribution)
	assert.Equal(t, Simulate(1350, 10, 7.5), report.Nominal)
	assert.Equal(t, 500.0, plan.MonthlyContribution, "caller plan must not be mutated")
}

func TestEvaluatePlan_BudgetWithoutSubstitution(t *testing.T) {
	engine := NewProjectionEngine()
	plan := basePlan()
	plan.Budget = &domain.Budget{MonthlyIncome: 5000, MonthlyExpenses: 3500, BufferPct: 10}

	report, err := engine.EvaluatePlan(context.Background(), &plan)
	require.NoError(t, err)
	assert.NotNil(t, report.Budget)
	assert.Equal(t, 500.0, report.Plan.MonthlyContribution)
}

func TestEvaluatePlan_InvalidPlan(t *testing.T) {
	engine := NewProjectionEngine()
	plan := basePlan()
	plan.HorizonYears = 0

	report, err := engine.EvaluatePlan(context.Background(), &plan)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, domain.ErrInvalidPlan))

	_, err = engine.EvaluatePlan(context.Background(), nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidPlan))
}

func TestEvaluatePlan_RejectsUnrepresentableInputs(t *testing.T) {
	testCases := []struct {
		desc    string
		mutate  func(p *domain.Plan)
		wantErr string
	}{
		{
			desc:    "return overflows the balance",
			mutate:  func(p *domain.Plan) { p.HorizonYears = 100; p.AnnualReturnPct = 100000 },
			wantErr: "balance overflows",
		},
		{
			desc:    "contribution growth overflows the indexed balance",
			mutate:  func(p *domain.Plan) { p.HorizonYears = 100; p.AnnualContributionGrowthPct = 1e6 },
			wantErr: "indexed balance overflows",
		},
		{
			desc:    "NaN contribution",
			mutate:  func(p *domain.Plan) { p.MonthlyContribution = math.NaN() },
			wantErr: "must be a finite number",
		},
		{
			desc:    "infinite return",
			mutate:  func(p *domain.Plan) { p.AnnualReturnPct = math.Inf(1) },
			wantErr: "must be a finite number",
		},
		{
			desc:    "NaN budget income",
			mutate:  func(p *domain.Plan) { p.Budget = &domain.Budget{MonthlyIncome: math.NaN()} },
			wantErr: "must be a finite number",
		},
	}

	engine := NewProjectionEngine()
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			plan := basePlan()
			tc.mutate(&plan)

			var (
				report *domain.PlanReport
				err    error
			)
			require.NotPanics(t, func() {
				report, err = engine.EvaluatePlan(context.Background(), &plan)
			})
			assert.Nil(t, report)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidPlan))
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestEvaluatePlan_HighButRepresentableReturn(t *testing.T) {
	plan := basePlan()
	plan.AnnualReturnPct = 500

	report, err := NewProjectionEngine().EvaluatePlan(context.Background(), &plan)
	require.NoError(t, err)
	assert.False(t, math.IsInf(report.Nominal.Final(), 0))
	assert.True(t, report.FinalNominal.IsPositive())
}

func TestEvaluatePlan_CancelledContext(t *testing.T) {
	engine := NewProjectionEngine()
	plan := basePlan()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.EvaluatePlan(ctx, &plan)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvaluatePlan_DebugLogging(t *testing.T) {
	engine := NewProjectionEngine()
	logger := &recordingLogger{}
	engine.SetLogger(logger)
	engine.Debug = true
	plan := basePlan()

	_, err := engine.EvaluatePlan(context.Background(), &plan)
	require.NoError(t, err)
	require.NotEmpty(t, logger.lines)
	assert.Contains(t, logger.lines[0], `PLAN "Base plan"`)
}

func TestSetLogger_NilFallsBackToNop(t *testing.T) {
	engine := NewProjectionEngine()
	engine.SetLogger(nil)
	assert.Equal(t, NopLogger{}, engine.Logger)
}

func TestRequiredMonthly_LogsBoundWidening(t *testing.T) {
	engine := NewProjectionEngine()
	logger := &recordingLogger{}
	engine.SetLogger(logger)

	res := engine.RequiredMonthly(1_000_000, 30, -50)
	assert.Greater(t, res.BoundDoublings, 0)
	require.Len(t, logger.lines, 1)
	assert.Contains(t, logger.lines[0], "WARN required-monthly upper bound widened")
}

func TestEvaluatePlans_PreservesOrderAndNames(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	SetNowFunc(func() time.Time { return fixed })
	defer SetNowFunc(func() time.Time { return time.Now().UTC() })

	engine := NewProjectionEngine()
	engine.Concurrency = 2

	var plans []domain.Plan
	for i := 1; i <= 6; i++ {
		p := basePlan()
		p.Name = ""
		p.MonthlyContribution = float64(i * 100)
		plans = append(plans, p)
	}

	batch, err := engine.EvaluatePlans(context.Background(), plans)
	require.NoError(t, err)
	require.Len(t, batch.Reports, 6)
	assert.Equal(t, fixed, batch.GeneratedAt)
	for i, r := range batch.Reports {
		assert.Equal(t, fmt.Sprintf("Plan %d", i+1), r.Name)
		assert.Equal(t, float64((i+1)*100), r.Plan.MonthlyContribution)
	}
}

func TestEvaluatePlans_FirstErrorFails(t *testing.T) {
	engine := NewProjectionEngine()
	good := basePlan()
	bad := basePlan()
	bad.Name = "broken"
	bad.AnnualFeePct = -1

	_, err := engine.EvaluatePlans(context.Background(), []domain.Plan{good, bad})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidPlan))
	assert.Contains(t, err.Error(), `plan "broken"`)
}

func TestEvaluatePlanFile(t *testing.T) {
	engine := NewProjectionEngine()
	file := &domain.PlanFile{Currency: "EUR", Plans: []domain.Plan{basePlan()}}

	batch, err := engine.EvaluatePlanFile(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, "EUR", batch.Currency)
	assert.Len(t, batch.Reports, 1)

	_, err = engine.EvaluatePlanFile(context.Background(), &domain.PlanFile{})
	assert.True(t, errors.Is(err, domain.ErrInvalidPlan))
}
