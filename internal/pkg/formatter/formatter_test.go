package formatter

import (
	"testing"

	"github.com/draftforge/contract-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContract() *entity.Contract {
	sub := 1
	return &entity.Contract{
		ID:           "11111111-2222-3333-4444-555555555555",
		ContractType: entity.ContractTypeTermsOfService,
		ModelUsed:    "stub/test-model",
		Sections: []entity.ContractSection{
			{Title: "Introduction", Content: "These terms govern use of the service.", SectionNumber: 1},
			{Title: "Registration", Content: "Provide accurate information.", SectionNumber: 2, SubsectionNumber: &sub},
		},
		HTMLContent: "<!DOCTYPE html><html><body><h2>1. Introduction</h2></body></html>",
	}
}

func TestFactoryCreate(t *testing.T) {
	factory := NewFactory()

	for _, format := range []entity.DownloadFormat{
		entity.FormatHTML, entity.FormatMarkdown, entity.FormatPDF, entity.FormatDOCX,
	} {
		f, err := factory.Create(format)
		require.NoError(t, err, "format %s", format)
		assert.NotEmpty(t, f.ContentType())
		assert.NotEmpty(t, f.FileExtension())
	}

	_, err := factory.Create("rtf")
	assert.Error(t, err)
}

func TestHTMLFormatterReturnsStoredDocument(t *testing.T) {
	out, err := NewHTMLFormatter().Format(testContract())
	require.NoError(t, err)
	assert.Equal(t, testContract().HTMLContent, string(out))
}

func TestMarkdownFormatter(t *testing.T) {
	out, err := NewMarkdownFormatter().Format(testContract())
	require.NoError(t, err)

	md := string(out)
	assert.Contains(t, md, "# Terms of Service")
	assert.Contains(t, md, "## 1. Introduction")
	assert.Contains(t, md, "### 2.1 Registration")
	assert.Contains(t, md, "These terms govern use of the service.")
}

func TestPDFFormatter(t *testing.T) {
	out, err := NewPDFFormatter().Format(testContract())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestDOCXFormatter(t *testing.T) {
	out, err := NewDOCXFormatter().Format(testContract())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	// DOCX files are zip archives
	assert.Equal(t, "PK", string(out[:2]))
}
