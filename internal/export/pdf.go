package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"severance-engine/internal/model"
)

const (
	pdfTitle      = "SIMULAÇÃO DE RESCISÃO"
	pdfMarginLeft = 20.0
	pdfLineHeight = 7.0
)

var pdfFontSize = map[Emphasis]float64{
	EmphasisNone:       10,
	EmphasisSubtotal:   10,
	EmphasisTotal:      12,
	EmphasisGrandTotal: 14,
}

// WritePDF renders the breakdown as a single-page A4 document.
func WritePDF(w io.Writer, r model.SettlementResult) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Simulação de rescisão", true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	y := 20.0
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(pdfMarginLeft, y-5)
	pdf.CellFormat(170, 10, tr(pdfTitle), "", 1, "C", false, 0, "")
	y += pdfLineHeight * 2

	for i, section := range Breakdown(r) {
		if i > 0 {
			y += pdfLineHeight * 0.5
		}
		for _, line := range section {
			style := ""
			if line.Emphasis != EmphasisNone {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, pdfFontSize[line.Emphasis])
			pdf.Text(pdfMarginLeft, y, tr(line.Label+": "+line.Value))
			y += pdfLineHeight
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
