package domain

import (
	"encoding/json"
	"fmt"

	"github.com/lsdca/strategy-simulator/pkg/finmath"
	"github.com/shopspring/decimal"
)

// Cycle is one phase of an investment strategy: optionally borrow a lump sum
// and repay it monthly, optionally invest a monthly contribution, each over
// its own window of whole years.
type Cycle struct {
	LoanAmount          decimal.Decimal
	LoanInterestRate    decimal.Decimal
	LoanRepaymentYears  int
	MonthlyContribution decimal.Decimal
	ContributionYears   int

	// monthlyRepayment is derived from the four loan fields at construction
	// time and is never settable independently. Editing a cycle means
	// building a new one through NewCycle, which recomputes it.
	monthlyRepayment decimal.Decimal
}

// NewCycle validates the cycle parameters and derives the fixed monthly loan
// repayment via the standard annuity formula.
func NewCycle(loanAmount, loanInterestRate decimal.Decimal, loanRepaymentYears int, monthlyContribution decimal.Decimal, contributionYears int) (Cycle, error) {
	if loanAmount.IsNegative() {
		return Cycle{}, fmt.Errorf("loan amount must be non-negative, got %s", loanAmount)
	}
	if loanInterestRate.IsNegative() || loanInterestRate.GreaterThan(decimal.NewFromInt(1)) {
		return Cycle{}, fmt.Errorf("loan interest rate must be between 0 and 1, got %s", loanInterestRate)
	}
	if loanRepaymentYears < 0 {
		return Cycle{}, fmt.Errorf("loan repayment years must be non-negative, got %d", loanRepaymentYears)
	}
	if monthlyContribution.IsNegative() {
		return Cycle{}, fmt.Errorf("monthly contribution must be non-negative, got %s", monthlyContribution)
	}
	if contributionYears < 0 {
		return Cycle{}, fmt.Errorf("contribution years must be non-negative, got %d", contributionYears)
	}

	repayment, err := finmath.AmortizedPayment(loanAmount, loanInterestRate, float64(loanRepaymentYears))
	if err != nil {
		return Cycle{}, fmt.Errorf("deriving monthly repayment: %w", err)
	}

	return Cycle{
		LoanAmount:          loanAmount,
		LoanInterestRate:    loanInterestRate,
		LoanRepaymentYears:  loanRepaymentYears,
		MonthlyContribution: monthlyContribution,
		ContributionYears:   contributionYears,
		monthlyRepayment:    repayment,
	}, nil
}

// MonthlyRepayment returns the derived fixed monthly loan payment.
func (c Cycle) MonthlyRepayment() decimal.Decimal {
	return c.monthlyRepayment
}

// EffectiveYears is the cycle duration: the longer of the repayment and
// contribution windows.
func (c Cycle) EffectiveYears() int {
	if c.LoanRepaymentYears > c.ContributionYears {
		return c.LoanRepaymentYears
	}
	return c.ContributionYears
}

// MarshalJSON exports the derived repayment alongside the configured fields.
func (c Cycle) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		LoanAmount          decimal.Decimal `json:"loan_amount"`
		LoanInterestRate    decimal.Decimal `json:"loan_interest_rate"`
		LoanRepaymentYears  int             `json:"loan_repayment_years"`
		MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
		ContributionYears   int             `json:"contribution_years"`
		MonthlyRepayment    decimal.Decimal `json:"monthly_repayment"`
	}{
		LoanAmount:          c.LoanAmount,
		LoanInterestRate:    c.LoanInterestRate,
		LoanRepaymentYears:  c.LoanRepaymentYears,
		MonthlyContribution: c.MonthlyContribution,
		ContributionYears:   c.ContributionYears,
		MonthlyRepayment:    c.monthlyRepayment,
	})
}

// Strategy is an ordered sequence of cycles simulated back-to-back: each
// cycle starts the instant the previous one's effective duration ends,
// inheriting the running portfolio and cumulative injected totals.
type Strategy []Cycle

// TotalYears is the combined effective duration of all cycles.
func (s Strategy) TotalYears() int {
	total := 0
	for _, c := range s {
		total += c.EffectiveYears()
	}
	return total
}
