package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lsdca/strategy-simulator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile_Valid(t *testing.T) {
	path := writeConfig(t, `
lump_sum_vs_dca: true
scenarios:
  - name: "Scenario 1 (Lump Sum)"
    annual_investment_rate: 0.08
    start_age: 30
    cycles:
      - loan_amount: 100000
        loan_interest_rate: 0.06
        loan_repayment_years: 20
        monthly_contribution: 500
        contribution_years: 20
  - name: "Scenario 2 (DCA)"
    annual_investment_rate: 0.08
    start_age: 30
`)

	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.LumpSumVsDCA)
	require.Len(t, cfg.Scenarios, 2)
	assert.Equal(t, "Scenario 1 (Lump Sum)", cfg.Scenarios[0].Name)
	assert.Equal(t, 0.08, cfg.Scenarios[0].AnnualInvestmentRate)
	assert.Equal(t, 30, cfg.Scenarios[0].StartAge)
	require.Len(t, cfg.Scenarios[0].Cycles, 1)
	assert.Equal(t, 100000.0, cfg.Scenarios[0].Cycles[0].LoanAmount)
	assert.Equal(t, 20, cfg.Scenarios[0].Cycles[0].LoanRepaymentYears)
	assert.Empty(t, cfg.Scenarios[1].Cycles)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFile_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "scenarios: [unclosed")
	parser := NewInputParser()
	_, err := parser.LoadFromFile(path)
	assert.Error(t, err)
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	valid := func() *domain.Configuration {
		return &domain.Configuration{
			Scenarios: []domain.ScenarioConfig{
				{
					AnnualInvestmentRate: 0.08,
					StartAge:             30,
					Cycles:               []domain.CycleConfig{{LoanAmount: 1000, LoanInterestRate: 0.05, LoanRepaymentYears: 5}},
				},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Configuration)
		wantErr bool
	}{
		{"valid", func(c *domain.Configuration) {}, false},
		{"no scenarios", func(c *domain.Configuration) { c.Scenarios = nil }, true},
		{"rate above 1", func(c *domain.Configuration) { c.Scenarios[0].AnnualInvestmentRate = 1.5 }, true},
		{"negative rate", func(c *domain.Configuration) { c.Scenarios[0].AnnualInvestmentRate = -0.1 }, true},
		{"age above 100", func(c *domain.Configuration) { c.Scenarios[0].StartAge = 101 }, true},
		{"negative age", func(c *domain.Configuration) { c.Scenarios[0].StartAge = -1 }, true},
		{"negative loan", func(c *domain.Configuration) { c.Scenarios[0].Cycles[0].LoanAmount = -1 }, true},
		{"loan rate above 1", func(c *domain.Configuration) { c.Scenarios[0].Cycles[0].LoanInterestRate = 1.01 }, true},
		{"loan years above 40", func(c *domain.Configuration) { c.Scenarios[0].Cycles[0].LoanRepaymentYears = 41 }, true},
		{"negative contribution", func(c *domain.Configuration) { c.Scenarios[0].Cycles[0].MonthlyContribution = -5 }, true},
		{"contribution years above 40", func(c *domain.Configuration) { c.Scenarios[0].Cycles[0].ContributionYears = 41 }, true},
		{"dca without cycles", func(c *domain.Configuration) {
			c.LumpSumVsDCA = true
			c.Scenarios[0].Cycles = nil
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := parser.ValidateConfiguration(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateExampleConfiguration_Validates(t *testing.T) {
	parser := NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	require.NoError(t, parser.ValidateConfiguration(cfg))

	assert.True(t, cfg.LumpSumVsDCA)
	require.Len(t, cfg.Scenarios, 2)
	assert.Equal(t, 0.08, cfg.Scenarios[0].AnnualInvestmentRate)
	assert.Equal(t, 30, cfg.Scenarios[0].StartAge)
	require.Len(t, cfg.Scenarios[0].Cycles, 1)
	assert.Equal(t, 100000.0, cfg.Scenarios[0].Cycles[0].LoanAmount)
	assert.Equal(t, 0.06, cfg.Scenarios[0].Cycles[0].LoanInterestRate)
	assert.Equal(t, 20, cfg.Scenarios[0].Cycles[0].LoanRepaymentYears)
}
