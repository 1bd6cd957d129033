package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/lsdca/strategy-simulator/internal/domain"
)

// CSVDetailedExporter writes every YearRecord of every scenario, one row per
// simulated year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "YearIndex", "AgeEnd", "PortfolioBefore", "OutOfPocketYear", "PortfolioAfter", "ROIYear", "DeltaYear", "NetGainsEndOfYear"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		for _, y := range sc.Result.Years {
			row := []string{
				sc.Name,
				strconv.Itoa(y.YearIndex),
				strconv.Itoa(y.AgeEnd),
				y.PortfolioBefore.StringFixed(2),
				y.OutOfPocketYear.StringFixed(2),
				y.PortfolioAfter.StringFixed(2),
				y.ROIYear.StringFixed(2),
				y.DeltaYear.StringFixed(2),
				y.NetGainsEndOfYear.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
