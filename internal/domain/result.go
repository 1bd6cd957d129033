package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// YearRecord is the per-year breakdown produced by the simulation engine.
// Records are append-only: once emitted they are never mutated.
type YearRecord struct {
	// YearIndex is 1-based and global across all cycles of a strategy.
	YearIndex int `json:"year_index"`
	// AgeEnd is the investor's age at the end of this year.
	AgeEnd            int             `json:"age_end"`
	PortfolioBefore   decimal.Decimal `json:"portfolio_before"`
	OutOfPocketYear   decimal.Decimal `json:"out_of_pocket_year"`
	PortfolioAfter    decimal.Decimal `json:"portfolio_after"`
	ROIYear           decimal.Decimal `json:"roi_year"`
	DeltaYear         decimal.Decimal `json:"delta_year"`
	NetGainsEndOfYear decimal.Decimal `json:"net_gains_end_of_year"`
}

// SimulationResult is the full output of one strategy simulation. It is
// derived entirely from its inputs on every run; nothing is shared or
// persisted between runs.
type SimulationResult struct {
	// Ages and NetGains are index-aligned: NetGains[i] is the cumulative
	// net gain at the end of the year in which the investor turns Ages[i].
	Ages           []int             `json:"ages"`
	NetGains       []decimal.Decimal `json:"net_gains"`
	FinalPortfolio decimal.Decimal   `json:"final_portfolio"`
	FinalNetGains  decimal.Decimal   `json:"final_net_gains"`
	Years          []YearRecord      `json:"years"`
}

// TotalInjected is the cumulative out-of-pocket cash over the whole
// simulation (borrowed principal is not out of pocket).
func (sr *SimulationResult) TotalInjected() decimal.Decimal {
	return sr.FinalPortfolio.Sub(sr.FinalNetGains)
}

// ScenarioSummary pairs a named scenario's inputs with its simulation result.
type ScenarioSummary struct {
	Name                 string           `json:"name"`
	AnnualInvestmentRate decimal.Decimal  `json:"annual_investment_rate"`
	StartAge             int              `json:"start_age"`
	Cycles               []Cycle          `json:"cycles"`
	FinalPortfolio       decimal.Decimal  `json:"final_portfolio"`
	TotalInjected        decimal.Decimal  `json:"total_injected"`
	FinalNetGains        decimal.Decimal  `json:"final_net_gains"`
	Result               SimulationResult `json:"result"`
}

// ScenarioComparison is the top-level report structure consumed by the
// output formatters.
type ScenarioComparison struct {
	Scenarios   []ScenarioSummary `json:"scenarios"`
	Assumptions []string          `json:"assumptions"`
}

// CycleConfig is the raw, file-facing form of a cycle. The derived monthly
// repayment deliberately has no field here; it is recomputed through the
// Cycle factory when the configuration is turned into a Strategy.
type CycleConfig struct {
	LoanAmount          float64 `yaml:"loan_amount" json:"loan_amount"`
	LoanInterestRate    float64 `yaml:"loan_interest_rate" json:"loan_interest_rate"`
	LoanRepaymentYears  int     `yaml:"loan_repayment_years" json:"loan_repayment_years"`
	MonthlyContribution float64 `yaml:"monthly_contribution" json:"monthly_contribution"`
	ContributionYears   int     `yaml:"contribution_years" json:"contribution_years"`
}

// ToCycle builds a validated Cycle with its derived repayment.
func (cc CycleConfig) ToCycle() (Cycle, error) {
	return NewCycle(
		decimal.NewFromFloat(cc.LoanAmount),
		decimal.NewFromFloat(cc.LoanInterestRate),
		cc.LoanRepaymentYears,
		decimal.NewFromFloat(cc.MonthlyContribution),
		cc.ContributionYears,
	)
}

// ScenarioConfig describes one scenario: its investment assumptions and its
// ordered cycle list.
type ScenarioConfig struct {
	Name                 string        `yaml:"name" json:"name"`
	AnnualInvestmentRate float64       `yaml:"annual_investment_rate" json:"annual_investment_rate"`
	StartAge             int           `yaml:"start_age" json:"start_age"`
	Cycles               []CycleConfig `yaml:"cycles" json:"cycles"`
}

// Strategy converts the scenario's cycle configs into a validated Strategy.
func (sc ScenarioConfig) Strategy() (Strategy, error) {
	strategy := make(Strategy, 0, len(sc.Cycles))
	for i, cc := range sc.Cycles {
		cycle, err := cc.ToCycle()
		if err != nil {
			return nil, fmt.Errorf("cycle %d: %w", i+1, err)
		}
		strategy = append(strategy, cycle)
	}
	return strategy, nil
}

// Configuration is the loaded input file: the scenarios to simulate and
// whether the second scenario should be auto-derived as the DCA mirror of
// the first.
type Configuration struct {
	LumpSumVsDCA bool             `yaml:"lump_sum_vs_dca" json:"lump_sum_vs_dca"`
	Scenarios    []ScenarioConfig `yaml:"scenarios" json:"scenarios"`
}
