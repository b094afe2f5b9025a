package formatter

import "github.com/draftforge/contract-backend/internal/entity"

const (
	htmlContentType   = "text/html; charset=utf-8"
	htmlFileExtension = ".html"
)

type HTMLFormatter struct{}

func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Format returns the rendered HTML document stored with the contract.
func (hf *HTMLFormatter) Format(contract *entity.Contract) ([]byte, error) {
	return []byte(contract.HTMLContent), nil
}

func (hf *HTMLFormatter) ContentType() string {
	return htmlContentType
}

func (hf *HTMLFormatter) FileExtension() string {
	return htmlFileExtension
}
