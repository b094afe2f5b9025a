package contract

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/draftforge/contract-backend/internal/entity"
	"golang.org/x/net/html"
)

const wordsPerPage = 450

// Leading "3." or "3.1" style numbering on a heading
var headingNumberRe = regexp.MustCompile(`^(\d+)(?:\.(\d+))?\.?\s+`)

// ParseSections splits generated HTML into numbered sections. <h2> headings
// open sections, <h3> headings open subsections of the current section;
// everything between headings becomes the section content as plain text.
// Headings carrying their own numbers win over positional counting.
func ParseSections(rawHTML string) []entity.ContractSection {
	tokenizer := html.NewTokenizer(strings.NewReader(rawHTML))

	var (
		sections       []entity.ContractSection
		current        *entity.ContractSection
		content        strings.Builder
		sectionCounter int
		subCounter     int
	)

	flush := func() {
		if current != nil {
			current.Content = collapseWhitespace(content.String())
			sections = append(sections, *current)
			current = nil
		}
		content.Reset()
	}

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}

		switch tt {
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "h2":
				flush()
				title, major, _ := parseHeading(headingText(tokenizer, "h2"))
				if major == 0 {
					major = sectionCounter + 1
				}
				sectionCounter = major
				subCounter = 0
				current = &entity.ContractSection{
					Title:         title,
					SectionNumber: major,
				}
			case "h3":
				if sectionCounter == 0 {
					// Subsection before any section: promote it
					flush()
					title, major, _ := parseHeading(headingText(tokenizer, "h3"))
					if major == 0 {
						major = 1
					}
					sectionCounter = major
					current = &entity.ContractSection{
						Title:         title,
						SectionNumber: major,
					}
					continue
				}
				flush()
				title, _, minor := parseHeading(headingText(tokenizer, "h3"))
				if minor == 0 {
					minor = subCounter + 1
				}
				subCounter = minor
				sub := minor
				current = &entity.ContractSection{
					Title:            title,
					SectionNumber:    sectionCounter,
					SubsectionNumber: &sub,
				}
			}
		case html.TextToken:
			if current != nil {
				content.Write(tokenizer.Text())
			}
		}
	}

	flush()

	return sections
}

// headingText consumes tokens up to the matching end tag and returns the
// concatenated text inside the heading.
func headingText(tokenizer *html.Tokenizer, tag string) string {
	var text strings.Builder
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.EndTagToken {
			name, _ := tokenizer.TagName()
			if string(name) == tag {
				break
			}
			continue
		}
		if tt == html.TextToken {
			text.Write(tokenizer.Text())
		}
	}
	return strings.TrimSpace(text.String())
}

func parseHeading(title string) (clean string, major, minor int) {
	match := headingNumberRe.FindStringSubmatch(title)
	if match == nil {
		return title, 0, 0
	}
	fmt.Sscanf(match[1], "%d", &major)
	if match[2] != "" {
		fmt.Sscanf(match[2], "%d", &minor)
	}
	return strings.TrimSpace(title[len(match[0]):]), major, minor
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// EstimatePages approximates the printed length of the document from
// section word counts, never reporting less than one page.
func EstimatePages(sections []entity.ContractSection) int {
	words := 0
	for _, section := range sections {
		words += len(strings.Fields(section.Title))
		words += len(strings.Fields(section.Content))
	}

	pages := words / wordsPerPage
	if pages < 1 {
		return 1
	}
	return pages
}

const documentShell = `<!DOCTYPE html>
<html lang=%q>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: Georgia, 'Times New Roman', serif; margin: 40px auto; max-width: 800px; line-height: 1.6; color: #1a1a1a; }
h1 { font-size: 28px; border-bottom: 2px solid #1a1a1a; padding-bottom: 8px; }
h2 { font-size: 20px; margin-top: 32px; }
h3 { font-size: 16px; margin-top: 24px; }
.document-meta { color: #666; font-size: 13px; margin-bottom: 32px; }
</style>
</head>
<body>
<div class="document-meta">%s &middot; Generated on %s</div>
%s
</body>
</html>
`

// RenderHTML wraps the raw generated markup into a standalone styled
// document suitable for display and download.
func RenderHTML(contractType entity.ContractType, language, rawHTML string, generatedAt time.Time) string {
	label := contractType.Label()
	return fmt.Sprintf(documentShell,
		language,
		label,
		label,
		generatedAt.Format("January 2, 2006"),
		strings.TrimSpace(rawHTML),
	)
}
