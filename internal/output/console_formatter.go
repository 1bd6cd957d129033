package output

import (
	"bytes"
	"fmt"

	"github.com/lsdca/strategy-simulator/internal/calculation"
	"github.com/lsdca/strategy-simulator/internal/domain"
)

// ConsoleFormatter renders the comparison as plain text: a summary table,
// the break-even point when the net-gains curves cross, and the full
// per-year detail for every scenario.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "STRATEGY COMPARISON SUMMARY")
	fmt.Fprintln(&buf, "===========================")
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-28s %18s %18s %18s\n", "Scenario", "Final Portfolio", "Total Injected", "Net Gains")
	for _, sc := range results.Scenarios {
		fmt.Fprintf(&buf, "%-28s %18s %18s %18s\n",
			sc.Name,
			FormatCurrency(sc.FinalPortfolio),
			FormatCurrency(sc.TotalInjected),
			FormatCurrency(sc.FinalNetGains),
		)
	}

	if len(results.Scenarios) >= 2 {
		be, err := calculation.CumulativeBreakEven(results.Scenarios[0].Result.Years, results.Scenarios[1].Result.Years)
		if err == nil && be != nil {
			fmt.Fprintln(&buf)
			fmt.Fprintf(&buf, "Net gains curves cross in year %d (around age %.1f, month %d) at %s\n",
				be.YearIndex, be.Age, be.Month, FormatCurrency(be.NetGains))
		}
	}

	if len(results.Assumptions) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Assumptions:")
		for _, a := range results.Assumptions {
			fmt.Fprintf(&buf, "  - %s\n", a)
		}
	}

	for _, sc := range results.Scenarios {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Annual detail - %s\n", sc.Name)
		fmt.Fprintf(&buf, "%4s %4s %16s %14s %16s %14s %14s %16s\n",
			"Year", "Age", "Portfolio In", "Out-of-Pocket", "Portfolio Out", "ROI", "Delta", "Net Gains")
		for _, y := range sc.Result.Years {
			fmt.Fprintf(&buf, "%4d %4d %16s %14s %16s %14s %14s %16s\n",
				y.YearIndex,
				y.AgeEnd,
				y.PortfolioBefore.StringFixed(2),
				y.OutOfPocketYear.StringFixed(2),
				y.PortfolioAfter.StringFixed(2),
				y.ROIYear.StringFixed(2),
				y.DeltaYear.StringFixed(2),
				y.NetGainsEndOfYear.StringFixed(2),
			)
		}
		if len(sc.Result.Years) == 0 {
			fmt.Fprintln(&buf, "  (no simulated years)")
		}
	}

	return buf.Bytes(), nil
}
