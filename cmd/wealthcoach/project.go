package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/wealthcoach/wealthcoach/internal/domain"
	"github.com/wealthcoach/wealthcoach/internal/output"
	"golang.org/x/sync/errgroup"
)

func newProjectCmd(a *app) *cobra.Command {
	var (
		file      string
		format    string
		outputDir string
		save      bool
		plan      domain.Plan
		budget    domain.Budget
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project one plan file, or a single plan given by flags",
		Example: `  wealthcoach project -f plan.yaml --format console
  wealthcoach project --monthly 500 --years 10 --return 8 --fee 0.5 --inflation 5 --target 1000000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pf *domain.PlanFile
			if file != "" {
				loaded, err := a.loadPlans(file)
				if err != nil {
					return err
				}
				pf = loaded
			} else {
				if cmd.Flags().Changed("income") || cmd.Flags().Changed("expenses") {
					b := budget
					plan.Budget = &b
				}
				pf = &domain.PlanFile{Plans: []domain.Plan{plan}}
				if err := a.parser.ValidatePlanFile(pf); err != nil {
					return err
				}
				for _, w := range a.parser.Warnings(pf) {
					a.log.Warn(w)
				}
			}

			report, err := a.engine.EvaluatePlanFile(cmd.Context(), pf)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), report, format, outputDir, save)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "plan file (.yaml, .yml, .toml, .json)")
	cmd.Flags().StringVar(&format, "format", "", "output format (see 'wealthcoach formats'); default from settings")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for saved reports; default from settings")
	cmd.Flags().BoolVar(&save, "save", false, "write the report to a timestamped file instead of stdout")

	cmd.Flags().StringVar(&plan.Name, "name", "", "plan name")
	cmd.Flags().Float64Var(&plan.MonthlyContribution, "monthly", 500, "monthly contribution")
	cmd.Flags().IntVar(&plan.HorizonYears, "years", 10, "horizon in years")
	cmd.Flags().Float64Var(&plan.AnnualReturnPct, "return", 8, "gross annual return, percent")
	cmd.Flags().Float64Var(&plan.AnnualFeePct, "fee", 0.5, "annual fees, percent")
	cmd.Flags().Float64Var(&plan.AnnualInflationPct, "inflation", 5, "annual inflation, percent")
	cmd.Flags().Float64Var(&plan.AnnualContributionGrowthPct, "growth", 5, "yearly contribution raise, percent")
	cmd.Flags().Float64Var(&plan.Target, "target", 0, "target balance (0 for none)")
	cmd.Flags().Float64Var(&budget.MonthlyIncome, "income", 0, "monthly income for the budget helper")
	cmd.Flags().Float64Var(&budget.MonthlyExpenses, "expenses", 0, "monthly expenses for the budget helper")
	cmd.Flags().Float64Var(&budget.BufferPct, "buffer", 10, "safety buffer kept from the available amount, percent")
	cmd.Flags().BoolVar(&plan.UseSafeAvailable, "use-safe", false, "invest the safe amount from the budget instead of --monthly")
	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		files     []string
		format    string
		outputDir string
		save      bool
	)

	cmd := &cobra.Command{
		Use:     "batch",
		Short:   "Project several plan files into one combined report",
		Example: `  wealthcoach batch -f base.yaml -f aggressive.toml --format csv --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(files) == 0 {
				return fmt.Errorf("at least one --file is required")
			}
			report, err := a.evaluateFiles(cmd.Context(), files)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), report, format, outputDir, save)
		},
	}
	cmd.Flags().StringSliceVarP(&files, "file", "f", nil, "plan files (repeatable)")
	cmd.Flags().StringVar(&format, "format", "", "output format; default from settings")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for saved reports; default from settings")
	cmd.Flags().BoolVar(&save, "save", false, "write the report to a timestamped file instead of stdout")
	return cmd
}

// evaluateFiles loads and evaluates files concurrently and concatenates the
// reports in argument order. The first file's currency wins.
func (a *app) evaluateFiles(ctx context.Context, files []string) (*domain.BatchReport, error) {
	batches := make([]*domain.BatchReport, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			pf, err := a.loadPlans(path)
			if err != nil {
				return err
			}
			batch, err := a.engine.EvaluatePlanFile(gctx, pf)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			batches[i] = batch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &domain.BatchReport{GeneratedAt: batches[0].GeneratedAt, Currency: batches[0].Currency}
	for _, b := range batches {
		merged.Reports = append(merged.Reports, b.Reports...)
	}
	qualifyDuplicateNames(merged, batches, files)
	a.log.Infof("evaluated %d plan(s) from %d file(s)", len(merged.Reports), len(files))
	return merged, nil
}

// qualifyDuplicateNames appends the source file to every plan name that occurs
// in more than one place of the merged batch, so "Plan 1" from two files stays
// distinguishable. A file passed twice is told apart by its argument position.
func qualifyDuplicateNames(merged *domain.BatchReport, batches []*domain.BatchReport, files []string) {
	names := make(map[string]int, len(merged.Reports))
	for _, r := range merged.Reports {
		names[r.Name]++
	}
	paths := make(map[string]int, len(files))
	for _, f := range files {
		paths[f]++
	}

	i := 0
	for fi, b := range batches {
		source := files[fi]
		if paths[source] > 1 {
			source = fmt.Sprintf("%s #%d", source, fi+1)
		}
		for range b.Reports {
			if names[merged.Reports[i].Name] > 1 {
				merged.Reports[i].Name = fmt.Sprintf("%s (%s)", merged.Reports[i].Name, source)
			}
			i++
		}
	}
}

// render prints the report, or saves it under outputDir when save is set.
func (a *app) render(w io.Writer, report *domain.BatchReport, format, outputDir string, save bool) error {
	if format == "" {
		format = a.settings.Output.Format
	}
	if report.Currency == "" {
		report.Currency = a.settings.Output.Currency
	}
	if outputDir == "" {
		outputDir = a.settings.Output.Dir
	}

	if save {
		files, err := output.GenerateReport(report, format, outputDir)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(w, "Report written to %s\n", f)
		}
		return nil
	}

	f, err := output.LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
