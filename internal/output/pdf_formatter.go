package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/lsdca/strategy-simulator/internal/domain"
)

const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 15.0
	pdfMarginBottom = 15.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight // A4 portrait
)

// PDFFormatter renders the comparison as a printable PDF report.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", "")}
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)

	r.addSummaryPage(results)
	for _, sc := range results.Scenarios {
		r.addScenarioDetail(sc)
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pdfReport struct {
	pdf *fpdf.Fpdf
}

func (r *pdfReport) addSummaryPage(results *domain.ScenarioComparison) {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 12, "Lump Sum vs DCA - Strategy Comparison", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.CellFormat(pdfContentWidth, 7, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)

	r.drawSectionHeader("Final Results")
	widths := []float64{70, 38, 36, 36}
	r.drawTableHeader([]string{"Scenario", "Final Portfolio", "Total Injected", "Net Gains"}, widths)
	for _, sc := range results.Scenarios {
		r.drawTableRow([]string{
			sc.Name,
			FormatCurrency(sc.FinalPortfolio),
			FormatCurrency(sc.TotalInjected),
			FormatCurrency(sc.FinalNetGains),
		}, widths, false)
	}
	r.pdf.Ln(8)

	if len(results.Assumptions) > 0 {
		r.drawSectionHeader("Assumptions")
		r.pdf.SetFont("Arial", "", 9)
		r.pdf.SetTextColor(50, 50, 50)
		for _, a := range results.Assumptions {
			r.pdf.CellFormat(pdfContentWidth, 5, "- "+a, "", 1, "L", false, 0, "")
		}
	}
}

func (r *pdfReport) addScenarioDetail(sc domain.ScenarioSummary) {
	r.pdf.AddPage()
	r.drawSectionHeader(fmt.Sprintf("Annual Detail - %s", sc.Name))

	widths := []float64{12, 12, 30, 25, 30, 25, 23, 23}
	r.drawTableHeader([]string{"Year", "Age", "Portfolio In", "Out-of-Pocket", "Portfolio Out", "ROI", "Delta", "Net Gains"}, widths)
	for _, y := range sc.Result.Years {
		r.drawTableRow([]string{
			fmt.Sprintf("%d", y.YearIndex),
			fmt.Sprintf("%d", y.AgeEnd),
			y.PortfolioBefore.StringFixed(2),
			y.OutOfPocketYear.StringFixed(2),
			y.PortfolioAfter.StringFixed(2),
			y.ROIYear.StringFixed(2),
			y.DeltaYear.StringFixed(2),
			y.NetGainsEndOfYear.StringFixed(2),
		}, widths, false)
	}
	if len(sc.Result.Years) == 0 {
		r.pdf.SetFont("Arial", "I", 9)
		r.pdf.CellFormat(pdfContentWidth, 6, "No simulated years.", "", 1, "L", false, 0, "")
	}
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 9, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(pdfMarginLeft, r.pdf.GetY(), pdfMarginLeft+pdfContentWidth, r.pdf.GetY())
	r.pdf.Ln(3)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 8)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64, isBold bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)
	if isBold {
		r.pdf.SetFont("Arial", "B", 8)
		r.pdf.SetFillColor(240, 240, 240)
	} else {
		r.pdf.SetFont("Arial", "", 8)
	}

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, cell, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
