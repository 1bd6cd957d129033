package calculation

import (
	"github.com/lsdca/strategy-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// DeriveDCAMirror derives the dollar-cost-averaging equivalent of a lump-sum
// strategy: for each cycle, a mirror cycle with no loan that instead invests
// the original cycle's monthly loan repayment over the original cycle's full
// effective duration. Both strategies then inject identical out-of-pocket
// cash per cycle; they differ only in when that capital becomes invested.
func DeriveDCAMirror(strategy domain.Strategy) domain.Strategy {
	mirror := make(domain.Strategy, 0, len(strategy))
	for _, c := range strategy {
		// A derived repayment is non-negative and the window comes from a
		// validated cycle, so the factory cannot fail here.
		m, _ := domain.NewCycle(decimal.Zero, decimal.Zero, 0, c.MonthlyRepayment(), c.EffectiveYears())
		mirror = append(mirror, m)
	}
	return mirror
}
