package preview

import (
	"fmt"
	"strings"
	"time"

	"github.com/moboufenzi-dev/rapport-stage-generator/internal/report"
)

func openPage(b *strings.Builder, title string) {
	b.WriteString(`<div class="preview-page">`)
	fmt.Fprintf(b, `<div class="preview-section-title">%s</div>`, title)
}

func closePage(b *strings.Builder) {
	b.WriteString(`</div>`)
}

// renderTOC emits one line per outline node with positional numbering
// (1, 1.1, 1.1.1), prefixed by the thanks line and suffixed by the glossary
// and annexes lines when their own gates allow.
func renderTOC(b *strings.Builder, d *report.ReportDocument) {
	openPage(b, "Table des matières")

	if d.IncludeThanks {
		b.WriteString(`<div class="preview-toc-item">Remerciements</div>`)
	}

	for i, ch := range d.Chapters {
		fmt.Fprintf(b, `<div class="preview-toc-item">%d. %s</div>`, i+1, esc(ch.Title))
		for j, sub := range ch.Children {
			fmt.Fprintf(b, `<div class="preview-toc-item level-2">%d.%d %s</div>`, i+1, j+1, esc(sub.Title))
			for k, subsub := range sub.Children {
				fmt.Fprintf(b, `<div class="preview-toc-item level-3">%d.%d.%d %s</div>`, i+1, j+1, k+1, esc(subsub.Title))
			}
		}
	}

	if d.IncludeGlossary && len(d.Glossary) > 0 {
		b.WriteString(`<div class="preview-toc-item">Glossaire</div>`)
	}
	if d.IncludeAnnexes {
		b.WriteString(`<div class="preview-toc-item">Annexes</div>`)
	}

	closePage(b)
}

func renderThanks(b *strings.Builder, d *report.ReportDocument) {
	openPage(b, "Remerciements")
	if strings.TrimSpace(d.ThanksText) == "" {
		b.WriteString(`<p class="preview-placeholder">[Texte des remerciements...]</p>`)
	} else {
		b.WriteString(renderMarkdown(d.ThanksText))
	}
	closePage(b)
}

func renderAbstract(b *strings.Builder, d *report.ReportDocument) {
	openPage(b, "Résumé")
	if strings.TrimSpace(d.AbstractText) == "" {
		b.WriteString(`<p class="preview-placeholder">[Résumé du rapport...]</p>`)
	} else {
		b.WriteString(renderMarkdown(d.AbstractText))
	}
	closePage(b)
}

func renderFigures(b *strings.Builder, d *report.ReportDocument) {
	openPage(b, "Liste des figures")
	for i, fig := range d.Figures {
		fmt.Fprintf(b, `<div class="preview-toc-item">Figure %d : %s <span>p.%s</span></div>`,
			i+1, esc(fig.Name), esc(fig.Page))
	}
	closePage(b)
}

func renderGlossary(b *strings.Builder, d *report.ReportDocument) {
	openPage(b, "Glossaire")
	for _, entry := range d.Glossary {
		fmt.Fprintf(b, `<p class="preview-glossary-item"><strong>%s</strong> : %s</p>`,
			esc(entry.Term), esc(entry.Definition))
	}
	closePage(b)
}

const dayLayout = "2006-01-02"

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse(dayLayout, s)
	return t, err == nil
}

// renderSchedule draws one horizontal bar per task on a shared timeline.
// Offsets and widths are percentages of the day span between the earliest
// start and the latest end; the span floors at one day so a single task (or
// all tasks on one day) renders a full-width bar instead of dividing by
// zero. Inverted ranges are rendered as entered.
func renderSchedule(b *strings.Builder, d *report.ReportDocument) {
	openPage(b, "Diagramme de Gantt")
	b.WriteString(`<div class="preview-gantt">`)

	minDate, totalDays, hasSpan := scheduleSpan(d.Schedule)

	for _, task := range d.Schedule {
		left, width := 0.0, 100.0
		if hasSpan {
			if start, ok := parseDay(task.Start); ok {
				if end, ok := parseDay(task.End); ok {
					left = days(start.Sub(minDate)) / totalDays * 100
					width = days(end.Sub(start)) / totalDays * 100
				}
			}
		}
		fmt.Fprintf(b, `<div class="preview-gantt-row"><span class="preview-gantt-label">%s</span>`+
			`<div class="preview-gantt-track"><div class="preview-gantt-bar" style="left:%.4f%%;width:%.4f%%;"></div></div></div>`,
			esc(task.Label), left, width)
	}

	b.WriteString(`</div>`)
	closePage(b)
}

// scheduleSpan finds the earliest start and the total day span across all
// tasks with parseable dates. hasSpan is false when no task has usable dates.
func scheduleSpan(tasks []report.ScheduleTask) (minDate time.Time, totalDays float64, hasSpan bool) {
	var maxDate time.Time
	for _, task := range tasks {
		start, okStart := parseDay(task.Start)
		end, okEnd := parseDay(task.End)
		if !okStart || !okEnd {
			continue
		}
		if !hasSpan {
			minDate, maxDate = start, end
			hasSpan = true
		}
		if start.Before(minDate) {
			minDate = start
		}
		if end.Before(minDate) {
			minDate = end
		}
		if end.After(maxDate) {
			maxDate = end
		}
		if start.After(maxDate) {
			maxDate = start
		}
	}
	if !hasSpan {
		return time.Time{}, 1, false
	}
	totalDays = days(maxDate.Sub(minDate))
	if totalDays < 1 {
		totalDays = 1
	}
	return minDate, totalDays, true
}

func days(d time.Duration) float64 {
	return d.Hours() / 24
}
