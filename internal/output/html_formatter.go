package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	calc "github.com/lsdca/strategy-simulator/internal/calculation"
	"github.com/lsdca/strategy-simulator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an inline SVG chart
// of age versus cumulative net gains for every scenario.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
}).Parse(htmlTemplateSource))

var seriesPalette = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd"}

type axisLabel struct {
	Pos  int
	Text string
}

type chartSeries struct {
	Name   string
	Color  string
	Points string
}

type chartData struct {
	Width, Height                            int
	PlotLeft, PlotTop, PlotRight, PlotBottom int
	Series                                   []chartSeries
	XLabels                                  []axisLabel
	YLabels                                  []axisLabel
	HasData                                  bool
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var breakEven *calc.BreakEvenResult
	if len(results.Scenarios) >= 2 {
		if be, err := calc.CumulativeBreakEven(results.Scenarios[0].Result.Years, results.Scenarios[1].Result.Years); err == nil {
			breakEven = be
		}
	}

	data := struct {
		*domain.ScenarioComparison
		BreakEven *calc.BreakEvenResult
		Chart     chartData
		Generated string
	}{
		ScenarioComparison: results,
		BreakEven:          breakEven,
		Chart:              buildNetGainsChart(results.Scenarios),
		Generated:          time.Now().Format("2006-01-02 15:04"),
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildNetGainsChart maps every scenario's (age, net gains) sequence onto a
// fixed SVG viewport.
func buildNetGainsChart(scenarios []domain.ScenarioSummary) chartData {
	chart := chartData{
		Width: 860, Height: 440,
		PlotLeft: 80, PlotTop: 20, PlotRight: 840, PlotBottom: 400,
	}

	minX, maxX := 0.0, 0.0
	minY, maxY := 0.0, 0.0
	first := true
	for _, sc := range scenarios {
		for i, age := range sc.Result.Ages {
			x := float64(age)
			y := sc.Result.NetGains[i].InexactFloat64()
			if first {
				minX, maxX, minY, maxY = x, x, y, y
				first = false
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if first {
		return chart
	}
	chart.HasData = true
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}

	plotW := float64(chart.PlotRight - chart.PlotLeft)
	plotH := float64(chart.PlotBottom - chart.PlotTop)
	toX := func(x float64) float64 { return float64(chart.PlotLeft) + (x-minX)/(maxX-minX)*plotW }
	toY := func(y float64) float64 { return float64(chart.PlotBottom) - (y-minY)/(maxY-minY)*plotH }

	for si, sc := range scenarios {
		var pts strings.Builder
		for i, age := range sc.Result.Ages {
			if i > 0 {
				pts.WriteByte(' ')
			}
			fmt.Fprintf(&pts, "%.1f,%.1f", toX(float64(age)), toY(sc.Result.NetGains[i].InexactFloat64()))
		}
		if pts.Len() == 0 {
			continue
		}
		chart.Series = append(chart.Series, chartSeries{
			Name:   sc.Name,
			Color:  seriesPalette[si%len(seriesPalette)],
			Points: pts.String(),
		})
	}

	const ticks = 5
	for i := 0; i <= ticks; i++ {
		xv := minX + (maxX-minX)*float64(i)/ticks
		yv := minY + (maxY-minY)*float64(i)/ticks
		chart.XLabels = append(chart.XLabels, axisLabel{Pos: int(toX(xv)), Text: fmt.Sprintf("%.0f", xv)})
		chart.YLabels = append(chart.YLabels, axisLabel{Pos: int(toY(yv)), Text: formatAxisAmount(yv)})
	}
	return chart
}

// formatAxisAmount keeps axis labels short: 1.2M, 340k, 500.
func formatAxisAmount(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.0fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
