package calculation

import (
	"context"
	"fmt"

	"github.com/lsdca/strategy-simulator/internal/domain"
	"github.com/lsdca/strategy-simulator/pkg/finmath"
	"github.com/shopspring/decimal"
)

// SimulationEngine runs multi-cycle strategy simulations. A run is a pure
// function of its inputs, so a single engine is safe to use for concurrent
// runs.
type SimulationEngine struct {
	Debug  bool
	Logger Logger
}

// NewSimulationEngine creates an engine with a no-op logger.
func NewSimulationEngine() *SimulationEngine {
	return &SimulationEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger restores the no-op default.
func (se *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		se.Logger = NopLogger{}
		return
	}
	se.Logger = l
}

// RunStrategy simulates the cycles of a strategy back-to-back and returns
// the year-indexed trajectory of portfolio value, out-of-pocket cash and net
// gains.
//
// Each cycle's borrowed principal is invested on day one of the cycle and is
// not counted as out-of-pocket money. Within every month the order is fixed:
// the loan repayment is spent, the contribution is invested, then the whole
// portfolio grows one month at the monthly investment rate. That ordering
// means a month's own contribution also earns that month's growth.
func (se *SimulationEngine) RunStrategy(ctx context.Context, strategy domain.Strategy, annualRate decimal.Decimal, startAge int) (*domain.SimulationResult, error) {
	if annualRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return nil, fmt.Errorf("annual investment rate must be greater than -1, got %s", annualRate)
	}
	if startAge < 0 {
		return nil, fmt.Errorf("start age must be non-negative, got %d", startAge)
	}

	monthlyRate := finmath.AnnualToMonthlyRate(annualRate)

	portfolio := decimal.Zero
	injected := decimal.Zero
	age := startAge

	result := &domain.SimulationResult{
		Ages:           make([]int, 0, strategy.TotalYears()),
		NetGains:       make([]decimal.Decimal, 0, strategy.TotalYears()),
		Years:          make([]domain.YearRecord, 0, strategy.TotalYears()),
		FinalPortfolio: decimal.Zero,
		FinalNetGains:  decimal.Zero,
	}

	for ci, cycle := range strategy {
		// Invest the borrowed principal immediately. Borrowed money is not
		// out of pocket, so it never touches the injected total.
		portfolio = portfolio.Add(cycle.LoanAmount)

		duration := cycle.EffectiveYears()
		if duration == 0 {
			// The principal still lands in the portfolio; with no year loop
			// its growth only becomes visible in the next cycle, or in the
			// final figures if this is the last one.
			continue
		}

		for y := 0; y < duration; y++ {
			before := portfolio
			outOfPocket := decimal.Zero

			for m := 0; m < 12; m++ {
				if y < cycle.LoanRepaymentYears {
					outOfPocket = outOfPocket.Add(cycle.MonthlyRepayment())
				}
				if y < cycle.ContributionYears {
					outOfPocket = outOfPocket.Add(cycle.MonthlyContribution)
					portfolio = portfolio.Add(cycle.MonthlyContribution)
				}
				portfolio = finmath.CompoundGrowth(portfolio, monthlyRate, 1)
			}

			injected = injected.Add(outOfPocket)
			after := portfolio
			roi := after.Sub(before).Sub(outOfPocket)
			netGains := portfolio.Sub(injected)
			age++

			record := domain.YearRecord{
				YearIndex:         len(result.Years) + 1,
				AgeEnd:            age,
				PortfolioBefore:   before,
				OutOfPocketYear:   outOfPocket,
				PortfolioAfter:    after,
				ROIYear:           roi,
				DeltaYear:         roi.Sub(outOfPocket),
				NetGainsEndOfYear: netGains,
			}
			result.Ages = append(result.Ages, age)
			result.NetGains = append(result.NetGains, netGains)
			result.Years = append(result.Years, record)
		}

		if se.Debug {
			se.Logger.Debugf("cycle %d done: portfolio=%s injected=%s", ci+1, portfolio.StringFixed(2), injected.StringFixed(2))
		}
	}

	result.FinalPortfolio = portfolio
	result.FinalNetGains = portfolio.Sub(injected)
	return result, nil
}

// RunComparison simulates every configured scenario. When the configuration
// asks for a lump-sum vs DCA comparison, the second scenario's cycles are
// replaced by the DCA mirror of the first scenario (and a second scenario is
// synthesized from the first when only one is configured).
func (se *SimulationEngine) RunComparison(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios configured")
	}

	type runSpec struct {
		name     string
		rate     decimal.Decimal
		startAge int
		strategy domain.Strategy
	}

	specs := make([]runSpec, 0, len(config.Scenarios)+1)
	for i, sc := range config.Scenarios {
		strategy, err := sc.Strategy()
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		name := sc.Name
		if name == "" {
			name = fmt.Sprintf("Scenario %d", i+1)
		}
		specs = append(specs, runSpec{
			name:     name,
			rate:     decimal.NewFromFloat(sc.AnnualInvestmentRate),
			startAge: sc.StartAge,
			strategy: strategy,
		})
	}

	if config.LumpSumVsDCA {
		mirror := DeriveDCAMirror(specs[0].strategy)
		if len(specs) >= 2 {
			specs[1].strategy = mirror
		} else {
			specs = append(specs, runSpec{
				name:     specs[0].name + " (DCA)",
				rate:     specs[0].rate,
				startAge: specs[0].startAge,
				strategy: mirror,
			})
		}
	}

	comparison := &domain.ScenarioComparison{
		Scenarios: make([]domain.ScenarioSummary, 0, len(specs)),
	}

	for _, run := range specs {
		result, err := se.RunStrategy(ctx, run.strategy, run.rate, run.startAge)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", run.name, err)
		}
		if se.Debug {
			se.Logger.Debugf("scenario %q: %d years, final portfolio %s, final net gains %s",
				run.name, len(result.Years), result.FinalPortfolio.StringFixed(2), result.FinalNetGains.StringFixed(2))
		}
		comparison.Scenarios = append(comparison.Scenarios, domain.ScenarioSummary{
			Name:                 run.name,
			AnnualInvestmentRate: run.rate,
			StartAge:             run.startAge,
			Cycles:               run.strategy,
			FinalPortfolio:       result.FinalPortfolio,
			TotalInjected:        result.TotalInjected(),
			FinalNetGains:        result.FinalNetGains,
			Result:               *result,
		})
	}

	comparison.Assumptions = generateAssumptions(config, comparison.Scenarios)
	return comparison, nil
}

// generateAssumptions echoes the simulation inputs into the report so every
// output format carries the context it was produced under.
func generateAssumptions(config *domain.Configuration, scenarios []domain.ScenarioSummary) []string {
	assumptions := make([]string, 0, len(scenarios)+2)
	for _, sc := range scenarios {
		assumptions = append(assumptions, fmt.Sprintf("%s: %s%% annual investment return, starting age %d, %d cycle(s)",
			sc.Name, sc.AnnualInvestmentRate.Mul(decimal.NewFromInt(100)).StringFixed(2), sc.StartAge, len(sc.Cycles)))
	}
	if config.LumpSumVsDCA {
		assumptions = append(assumptions, "Second scenario cycles auto-derived as the DCA mirror of the first scenario")
	}
	assumptions = append(assumptions, "Deterministic simulation; no inflation, tax, or multi-currency modeling")
	return assumptions
}
