package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/wealthcoach/wealthcoach/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedPlanFile is returned for plan files with an unknown extension.
var ErrUnsupportedPlanFile = errors.New("unsupported plan file type")

// Input ranges offered by the interactive form. Values outside them are legal
// but unusual, so they produce warnings instead of errors.
const (
	uiMaxReturnPct    = 20.0
	uiMinReturnPct    = 1.0
	uiMaxFeePct       = 3.0
	uiMaxInflationPct = 15.0
	uiMaxGrowthPct    = 20.0
	uiMaxBufferPct    = 30.0
)

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads plans from a YAML, TOML or JSON file chosen by extension.
// A file may hold a `plans` list or the fields of a single plan at top level.
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var unmarshal func([]byte, any) error
	var kind string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		unmarshal, kind = yaml.Unmarshal, "YAML"
	case ".toml":
		unmarshal, kind = toml.Unmarshal, "TOML"
	case ".json":
		unmarshal, kind = json.Unmarshal, "JSON"
	default:
		return nil, fmt.Errorf("%w: %s (use .yaml, .yml, .toml or .json)", ErrUnsupportedPlanFile, filename)
	}

	file, err := ip.Parse(data, unmarshal)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", kind, err)
	}

	if err := ip.ValidatePlanFile(file); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return file, nil
}

// Parse decodes raw plan data with the given unmarshal function. It does not validate.
func (ip *InputParser) Parse(data []byte, unmarshal func([]byte, any) error) (*domain.PlanFile, error) {
	var file domain.PlanFile
	if err := unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Plans) > 0 {
		return &file, nil
	}

	var single domain.Plan
	if err := unmarshal(data, &single); err != nil {
		return nil, err
	}
	if single != (domain.Plan{}) {
		file.Plans = []domain.Plan{single}
	}
	return &file, nil
}

// ValidatePlanFile validates every plan in the file
func (ip *InputParser) ValidatePlanFile(file *domain.PlanFile) error {
	if file == nil || len(file.Plans) == 0 {
		return fmt.Errorf("no plans provided")
	}

	seen := make(map[string]bool, len(file.Plans))
	for i := range file.Plans {
		plan := &file.Plans[i]
		if err := plan.Validate(); err != nil {
			return fmt.Errorf("plan %d validation failed: %w", i, err)
		}
		if plan.Name != "" {
			if seen[plan.Name] {
				return fmt.Errorf("plan %d: duplicate plan name %q", i, plan.Name)
			}
			seen[plan.Name] = true
		}
	}

	return nil
}

// Warnings lists inputs that are valid but outside the ranges the form offers.
func (ip *InputParser) Warnings(file *domain.PlanFile) []string {
	var warnings []string
	for i := range file.Plans {
		p := &file.Plans[i]
		name := p.DisplayName(fmt.Sprintf("plan %d", i))
		if p.AnnualReturnPct < uiMinReturnPct || p.AnnualReturnPct > uiMaxReturnPct {
			warnings = append(warnings, fmt.Sprintf("%s: annual return %.2f%% is outside the usual %.0f-%.0f%% range", name, p.AnnualReturnPct, uiMinReturnPct, uiMaxReturnPct))
		}
		if p.AnnualFeePct > uiMaxFeePct {
			warnings = append(warnings, fmt.Sprintf("%s: annual fee %.2f%% is above %.0f%%", name, p.AnnualFeePct, uiMaxFeePct))
		}
		if p.AnnualInflationPct > uiMaxInflationPct {
			warnings = append(warnings, fmt.Sprintf("%s: annual inflation %.2f%% is above %.0f%%", name, p.AnnualInflationPct, uiMaxInflationPct))
		}
		if p.AnnualContributionGrowthPct > uiMaxGrowthPct {
			warnings = append(warnings, fmt.Sprintf("%s: contribution growth %.2f%% is above %.0f%%", name, p.AnnualContributionGrowthPct, uiMaxGrowthPct))
		}
		if p.Budget != nil && p.Budget.BufferPct > uiMaxBufferPct {
			warnings = append(warnings, fmt.Sprintf("%s: budget buffer %.0f%% is above %.0f%%", name, p.Budget.BufferPct, uiMaxBufferPct))
		}
	}
	return warnings
}

// CreateExamplePlanFile returns a plan file populated with the form defaults.
func (ip *InputParser) CreateExamplePlanFile() *domain.PlanFile {
	return &domain.PlanFile{
		Currency: "lei",
		Plans: []domain.Plan{
			{
				Name:                        "Base plan",
				MonthlyContribution:         500,
				HorizonYears:                10,
				AnnualReturnPct:             8,
				AnnualFeePct:                0.5,
				AnnualInflationPct:          5,
				AnnualContributionGrowthPct: 5,
				Target:                      1_000_000,
			},
			{
				Name:                        "Budget-driven plan",
				HorizonYears:                15,
				AnnualReturnPct:             8,
				AnnualFeePct:                0.5,
				AnnualInflationPct:          5,
				AnnualContributionGrowthPct: 5,
				Target:                      1_000_000,
				Budget: &domain.Budget{
					MonthlyIncome:   5000,
					MonthlyExpenses: 3500,
					BufferPct:       10,
				},
				UseSafeAvailable: true,
			},
		},
	}
}

// SavePlanFile writes a plan file as YAML.
func (ip *InputParser) SavePlanFile(file *domain.PlanFile, filename string) error {
	b, err := yaml.Marshal(file)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
