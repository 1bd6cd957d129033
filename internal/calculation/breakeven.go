package calculation

import (
	"fmt"

	"github.com/lsdca/strategy-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// BreakEvenResult describes the first point where the cumulative net gains
// of two simulated scenarios are equal.
type BreakEvenResult struct {
	// YearIndex is the 1-based index of the later year of the crossover in
	// the aligned year sequences.
	YearIndex int `json:"year_index"`

	// Fraction (0..1) of that year at which the crossover occurs, by linear
	// interpolation between the two year-end values.
	Fraction decimal.Decimal `json:"fraction_of_year"`

	// Age is the (fractional) age at the crossover, using scenario A's ages.
	Age float64 `json:"age"`

	// Month within the crossover year (1..12), for display.
	Month int `json:"month"`

	// NetGains is scenario A's interpolated cumulative net gains at the
	// crossover point.
	NetGains decimal.Decimal `json:"net_gains"`
}

// CumulativeBreakEven finds the first crossover (if any) between the
// cumulative net gains of two year sequences. The sequences are aligned by
// index from each scenario's own start and truncated to the shorter one. An
// exact equality at the very first index is ignored as trivial. Returns
// (nil, nil) when the curves never cross.
func CumulativeBreakEven(yearsA, yearsB []domain.YearRecord) (*BreakEvenResult, error) {
	if len(yearsA) == 0 || len(yearsB) == 0 {
		return nil, fmt.Errorf("one or both year sequences are empty")
	}

	n := len(yearsA)
	if len(yearsB) < n {
		n = len(yearsB)
	}

	cent := decimal.NewFromFloat(0.01)
	for i := 0; i < n; i++ {
		currDiff := yearsA[i].NetGainsEndOfYear.Sub(yearsB[i].NetGainsEndOfYear)

		if currDiff.Abs().LessThan(cent) {
			if i == 0 {
				continue
			}
			// Crossover lands exactly on a year boundary.
			return &BreakEvenResult{
				YearIndex: yearsA[i].YearIndex,
				Fraction:  decimal.NewFromInt(1),
				Age:       float64(yearsA[i].AgeEnd),
				Month:     12,
				NetGains:  yearsA[i].NetGainsEndOfYear,
			}, nil
		}

		if i == 0 {
			continue
		}

		prevDiff := yearsA[i-1].NetGainsEndOfYear.Sub(yearsB[i-1].NetGainsEndOfYear)
		if prevDiff.Mul(currDiff).GreaterThanOrEqual(decimal.Zero) {
			continue
		}

		// Sign changed inside this year: diff(t) = prevDiff + t*(currDiff-prevDiff),
		// solve diff(t) = 0 for t.
		denom := currDiff.Sub(prevDiff)
		t := decimal.NewFromFloat(0.5)
		if !denom.IsZero() {
			t = prevDiff.Neg().Div(denom)
		}
		if t.LessThan(decimal.Zero) {
			t = decimal.Zero
		} else if t.GreaterThan(decimal.NewFromInt(1)) {
			t = decimal.NewFromInt(1)
		}

		prevGains := yearsA[i-1].NetGainsEndOfYear
		gainsAt := prevGains.Add(yearsA[i].NetGainsEndOfYear.Sub(prevGains).Mul(t))

		month := int(t.InexactFloat64() * 12)
		if month < 1 {
			month = 1
		} else if month > 12 {
			month = 12
		}

		return &BreakEvenResult{
			YearIndex: yearsA[i].YearIndex,
			Fraction:  t,
			Age:       float64(yearsA[i-1].AgeEnd) + t.InexactFloat64(),
			Month:     month,
			NetGains:  gainsAt,
		}, nil
	}

	return nil, nil
}
