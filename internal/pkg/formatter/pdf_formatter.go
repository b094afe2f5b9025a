package formatter

import (
	"bytes"
	"fmt"

	"github.com/draftforge/contract-backend/internal/entity"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"
)

type PDFFormatter struct{}

func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{}
}

func (pf *PDFFormatter) Format(contract *entity.Contract) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 10, contract.ContractType.Label())
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	_, lineHeight := pdf.GetFontSize()

	for _, section := range contract.Sections {
		var heading string
		if section.SubsectionNumber != nil {
			heading = fmt.Sprintf("%d.%d %s", section.SectionNumber, *section.SubsectionNumber, section.Title)
		} else {
			heading = fmt.Sprintf("%d. %s", section.SectionNumber, section.Title)
		}

		pdf.SetFont("Arial", "B", 14)
		pdf.MultiCell(0, lineHeight*1.6, heading, "", "", false)
		pdf.Ln(2)

		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, lineHeight*1.5, section.Content, "", "", false)
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (pf *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (pf *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
