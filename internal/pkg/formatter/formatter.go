package formatter

import (
	"fmt"

	"github.com/draftforge/contract-backend/internal/entity"
)

// Formatter renders a stored contract into a downloadable representation
type Formatter interface {
	Format(contract *entity.Contract) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.DownloadFormat) (Formatter, error) {
	switch format {
	case entity.FormatHTML:
		return NewHTMLFormatter(), nil
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
