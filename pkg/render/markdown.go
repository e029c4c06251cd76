package render

import (
	"html/template"

	"github.com/russross/blackfriday"
)

// ToHTML renders trusted markdown for the status page.
func ToHTML(markdown string) template.HTML {
	return template.HTML(blackfriday.MarkdownCommon([]byte(markdown)))
}
