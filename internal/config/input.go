package config

import (
	"fmt"
	"os"

	"github.com/lsdca/strategy-simulator/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a comparison configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. The bounds are
// the input domain the simulation engine is specified against; everything
// inside them simulates without further checks.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i+1, err)
		}
	}

	if config.LumpSumVsDCA && len(config.Scenarios[0].Cycles) == 0 {
		return fmt.Errorf("lump sum vs DCA comparison requires at least one cycle in the first scenario")
	}

	return nil
}

// validateScenario validates a single scenario's parameters and cycles
func (ip *InputParser) validateScenario(scenario *domain.ScenarioConfig) error {
	if scenario.AnnualInvestmentRate < 0 || scenario.AnnualInvestmentRate > 1 {
		return fmt.Errorf("annual investment rate must be between 0 and 1, got %v", scenario.AnnualInvestmentRate)
	}
	if scenario.StartAge < 0 || scenario.StartAge > 100 {
		return fmt.Errorf("start age must be between 0 and 100, got %d", scenario.StartAge)
	}

	for i, cycle := range scenario.Cycles {
		if err := ip.validateCycle(&cycle); err != nil {
			return fmt.Errorf("cycle %d validation failed: %w", i+1, err)
		}
	}

	return nil
}

// validateCycle validates a single cycle's raw input fields
func (ip *InputParser) validateCycle(cycle *domain.CycleConfig) error {
	if cycle.LoanAmount < 0 {
		return fmt.Errorf("loan amount cannot be negative")
	}
	if cycle.LoanInterestRate < 0 || cycle.LoanInterestRate > 1 {
		return fmt.Errorf("loan interest rate must be between 0 and 1, got %v", cycle.LoanInterestRate)
	}
	if cycle.LoanRepaymentYears < 0 || cycle.LoanRepaymentYears > 40 {
		return fmt.Errorf("loan repayment years must be between 0 and 40, got %d", cycle.LoanRepaymentYears)
	}
	if cycle.MonthlyContribution < 0 {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	if cycle.ContributionYears < 0 || cycle.ContributionYears > 40 {
		return fmt.Errorf("contribution years must be between 0 and 40, got %d", cycle.ContributionYears)
	}
	return nil
}

// CreateExampleConfiguration creates an example lump-sum vs DCA comparison:
// borrow 100k at 6% over 20 years and invest it up front, versus investing
// the equivalent monthly repayment instead.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		LumpSumVsDCA: true,
		Scenarios: []domain.ScenarioConfig{
			{
				Name:                 "Scenario 1 (Lump Sum)",
				AnnualInvestmentRate: 0.08,
				StartAge:             30,
				Cycles: []domain.CycleConfig{
					{
						LoanAmount:          100000,
						LoanInterestRate:    0.06,
						LoanRepaymentYears:  20,
						MonthlyContribution: 500,
						ContributionYears:   20,
					},
				},
			},
			{
				Name:                 "Scenario 2 (DCA)",
				AnnualInvestmentRate: 0.08,
				StartAge:             30,
			},
		},
	}
}
