// Package finmath provides the core financial arithmetic used by the
// simulation engine: compound growth, annual-to-monthly rate conversion,
// and standard loan amortization. All functions are pure.
package finmath

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	one    = decimal.NewFromInt(1)
	minus1 = decimal.NewFromInt(-1)
)

// CompoundGrowth returns principal * (1 + monthlyRate)^months.
// Defined for monthlyRate > -1. The simulation engine calls this with
// months == 1 for each monthly step.
func CompoundGrowth(principal, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	return principal.Mul(one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(months))))
}

// AnnualToMonthlyRate converts an annual nominal rate to the equivalent
// monthly rate via (1 + annual)^(1/12) - 1, the geometric conversion whose
// 12-fold composition reproduces the annual rate exactly. Defined for
// annual > -1.
func AnnualToMonthlyRate(annual decimal.Decimal) decimal.Decimal {
	monthly := math.Pow(1+annual.InexactFloat64(), 1.0/12.0) - 1
	return decimal.NewFromFloat(monthly)
}

// AmortizedPayment returns the fixed monthly annuity payment that fully
// amortizes principal over floor(years*12) months at the given annual rate.
// Fractional years are truncated to whole months. A zero-month term yields a
// zero payment; a zero monthly rate falls back to straight-line principal/n
// to avoid division by zero in the annuity formula.
//
// Out-of-domain inputs (negative principal, rate <= -1, negative years) are
// rejected here rather than left to produce NaN inside the hot loop.
func AmortizedPayment(principal, annualRate decimal.Decimal, years float64) (decimal.Decimal, error) {
	if principal.IsNegative() {
		return decimal.Zero, fmt.Errorf("amortized payment: principal must be non-negative, got %s", principal)
	}
	if annualRate.LessThanOrEqual(minus1) {
		return decimal.Zero, fmt.Errorf("amortized payment: annual rate must be greater than -1, got %s", annualRate)
	}
	if years < 0 {
		return decimal.Zero, fmt.Errorf("amortized payment: years must be non-negative, got %v", years)
	}

	n := int(years * 12)
	if n == 0 {
		return decimal.Zero, nil
	}

	r := AnnualToMonthlyRate(annualRate)
	if r.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(n))), nil
	}

	growth := one.Add(r).Pow(decimal.NewFromInt(int64(n)))
	return principal.Mul(r.Mul(growth)).Div(growth.Sub(one)), nil
}
