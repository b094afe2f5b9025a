package formatter

import (
	"bytes"
	"fmt"

	"github.com/draftforge/contract-backend/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(contract *entity.Contract) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", contract.ContractType.Label())
	fmt.Fprintf(&buf, "_Generated by %s_\n\n", contract.ModelUsed)

	for _, section := range contract.Sections {
		if section.SubsectionNumber != nil {
			fmt.Fprintf(&buf, "### %d.%d %s\n\n", section.SectionNumber, *section.SubsectionNumber, section.Title)
		} else {
			fmt.Fprintf(&buf, "## %d. %s\n\n", section.SectionNumber, section.Title)
		}
		fmt.Fprintf(&buf, "%s\n\n", section.Content)
	}

	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
