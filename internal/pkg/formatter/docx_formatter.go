package formatter

import (
	"bytes"
	"fmt"

	"github.com/draftforge/contract-backend/internal/entity"
	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (df *DOCXFormatter) Format(contract *entity.Contract) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	titlePar := doc.AddParagraph()
	titlePar.SetStyle("Heading1")
	titleRun := titlePar.AddRun()
	titleRun.AddText(contract.ContractType.Label())

	doc.AddParagraph()

	for _, section := range contract.Sections {
		headingPar := doc.AddParagraph()
		if section.SubsectionNumber != nil {
			headingPar.SetStyle("Heading3")
			headingPar.AddRun().AddText(fmt.Sprintf("%d.%d %s", section.SectionNumber, *section.SubsectionNumber, section.Title))
		} else {
			headingPar.SetStyle("Heading2")
			headingPar.AddRun().AddText(fmt.Sprintf("%d. %s", section.SectionNumber, section.Title))
		}

		bodyPar := doc.AddParagraph()
		bodyPar.AddRun().AddText(section.Content)
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (df *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (df *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
