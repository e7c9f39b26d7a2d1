// Package preview projects a ReportDocument snapshot into the live preview
// markup. Rendering is a pure function of the snapshot: no side effects,
// byte-identical output for equal inputs, and total over every reachable
// document shape.
package preview

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/moboufenzi-dev/rapport-stage-generator/internal/report"
)

// EmptyMessage is rendered when every section flag is off.
const EmptyMessage = `<p class="preview-empty">Remplissez le formulaire pour voir l'aperçu</p>`

// DefaultAccent is the fallback accent color when no heading color is set.
const DefaultAccent = "#1a365d"

// Render assembles the full preview. Section order is fixed: cover, thanks,
// table of contents, abstract, figure list, schedule chart, glossary; each
// section is gated by its own inclusion flag.
func Render(d *report.ReportDocument) string {
	var b strings.Builder

	if d.IncludeCover {
		renderCover(&b, d)
	}
	if d.IncludeThanks {
		renderThanks(&b, d)
	}
	if d.IncludeTOC {
		renderTOC(&b, d)
	}
	if d.IncludeAbstract {
		renderAbstract(&b, d)
	}
	if d.IncludeFigures && len(d.Figures) > 0 {
		renderFigures(&b, d)
	}
	if d.IncludeSchedule && len(d.Schedule) > 0 {
		renderSchedule(&b, d)
	}
	if d.IncludeGlossary && len(d.Glossary) > 0 {
		renderGlossary(&b, d)
	}

	if b.Len() == 0 {
		return EmptyMessage
	}
	return b.String()
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// renderMarkdown converts free-text Markdown to HTML. Conversion failures
// degrade to escaped plain text so the render path never errors.
func renderMarkdown(src string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "<p>" + esc(src) + "</p>"
	}
	return buf.String()
}

func esc(s string) string {
	return html.EscapeString(s)
}

// orPlaceholder escapes s, falling back to the given bracketed placeholder
// when the field is empty so the preview never looks blank.
func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return esc(s)
}

// accentColor returns the document's accent, derived from the level-1
// heading color. Colors pass through a conservative filter so a stored value
// cannot break out of a style attribute.
func accentColor(d *report.ReportDocument) string {
	c := d.Style.Title1Color
	if c == "" {
		return DefaultAccent
	}
	for _, r := range c {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '#':
		default:
			return DefaultAccent
		}
	}
	return c
}
