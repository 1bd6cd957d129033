package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/lsdca/strategy-simulator/pkg/finmath"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCycle_DerivesMonthlyRepayment(t *testing.T) {
	cycle, err := NewCycle(decimal.NewFromInt(100000), decimal.NewFromFloat(0.06), 20, decimal.NewFromInt(500), 20)
	require.NoError(t, err)

	want, err := finmath.AmortizedPayment(decimal.NewFromInt(100000), decimal.NewFromFloat(0.06), 20)
	require.NoError(t, err)
	if !cycle.MonthlyRepayment().Equal(want) {
		t.Fatalf("derived repayment %s does not match amortization formula %s", cycle.MonthlyRepayment(), want)
	}
}

func TestNewCycle_NoLoanMeansNoRepayment(t *testing.T) {
	cycle, err := NewCycle(decimal.Zero, decimal.Zero, 0, decimal.NewFromInt(250), 10)
	require.NoError(t, err)
	assert.True(t, cycle.MonthlyRepayment().IsZero())
}

func TestNewCycle_Validation(t *testing.T) {
	tests := []struct {
		name       string
		loan       decimal.Decimal
		rate       decimal.Decimal
		loanYears  int
		contrib    decimal.Decimal
		conYears   int
	}{
		{"negative loan", decimal.NewFromInt(-1), decimal.Zero, 0, decimal.Zero, 0},
		{"rate above 1", decimal.Zero, decimal.NewFromFloat(1.5), 0, decimal.Zero, 0},
		{"negative rate", decimal.Zero, decimal.NewFromFloat(-0.01), 0, decimal.Zero, 0},
		{"negative loan years", decimal.Zero, decimal.Zero, -1, decimal.Zero, 0},
		{"negative contribution", decimal.Zero, decimal.Zero, 0, decimal.NewFromInt(-5), 0},
		{"negative contribution years", decimal.Zero, decimal.Zero, 0, decimal.Zero, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCycle(tt.loan, tt.rate, tt.loanYears, tt.contrib, tt.conYears)
			assert.Error(t, err)
		})
	}
}

func TestCycle_EffectiveYears(t *testing.T) {
	cycle, err := NewCycle(decimal.NewFromInt(10000), decimal.NewFromFloat(0.04), 15, decimal.NewFromInt(100), 25)
	require.NoError(t, err)
	assert.Equal(t, 25, cycle.EffectiveYears())

	cycle, err = NewCycle(decimal.NewFromInt(10000), decimal.NewFromFloat(0.04), 15, decimal.Zero, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, cycle.EffectiveYears())
}

func TestCycle_MarshalJSONIncludesDerivedRepayment(t *testing.T) {
	cycle, err := NewCycle(decimal.NewFromInt(12000), decimal.Zero, 10, decimal.Zero, 0)
	require.NoError(t, err)

	b, err := json.Marshal(cycle)
	require.NoError(t, err)
	if !strings.Contains(string(b), `"monthly_repayment":"100"`) {
		t.Fatalf("expected derived repayment in JSON output, got %s", b)
	}
}

func TestStrategy_TotalYears(t *testing.T) {
	c1, err := NewCycle(decimal.NewFromInt(100000), decimal.NewFromFloat(0.06), 20, decimal.Zero, 0)
	require.NoError(t, err)
	c2, err := NewCycle(decimal.Zero, decimal.Zero, 0, decimal.NewFromInt(300), 5)
	require.NoError(t, err)

	assert.Equal(t, 25, Strategy{c1, c2}.TotalYears())
	assert.Equal(t, 0, Strategy{}.TotalYears())
}

func TestCycleConfig_ToCycle(t *testing.T) {
	cc := CycleConfig{LoanAmount: 100000, LoanInterestRate: 0.06, LoanRepaymentYears: 20}
	cycle, err := cc.ToCycle()
	require.NoError(t, err)
	assert.Equal(t, 20, cycle.EffectiveYears())
	assert.True(t, cycle.MonthlyRepayment().IsPositive())
}
