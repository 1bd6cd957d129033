package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/lsdca/strategy-simulator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "StartAge", "AnnualInvestmentRate", "SimulatedYears", "FinalPortfolio", "TotalInjected", "FinalNetGains"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		row := []string{
			sc.Name,
			strconv.Itoa(sc.StartAge),
			sc.AnnualInvestmentRate.String(),
			strconv.Itoa(len(sc.Result.Years)),
			sc.FinalPortfolio.StringFixed(2),
			sc.TotalInjected.StringFixed(2),
			sc.FinalNetGains.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
