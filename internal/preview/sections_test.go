package preview

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/moboufenzi-dev/rapport-stage-generator/internal/report"
)

func renderSection(fn func(*strings.Builder, *report.ReportDocument), d *report.ReportDocument) string {
	var b strings.Builder
	fn(&b, d)
	return b.String()
}

func TestTOCNumberingIsPositional(t *testing.T) {
	d := report.DefaultDocument()
	d.Chapters = []*report.ChapterNode{
		{ID: 900, Title: "Alpha", Level: 1, Children: []*report.ChapterNode{
			{ID: 5, Title: "Alpha un", Level: 2, Children: []*report.ChapterNode{
				{ID: 77, Title: "Alpha un a", Level: 3},
			}},
			{ID: 3, Title: "Alpha deux", Level: 2},
		}},
		{ID: 1, Title: "Beta", Level: 1},
	}

	out := renderSection(renderTOC, d)
	for _, want := range []string{
		">1. Alpha<",
		">1.1 Alpha un<",
		">1.1.1 Alpha un a<",
		">1.2 Alpha deux<",
		">2. Beta<",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("TOC missing %q\nout: %s", want, out)
		}
	}
}

func TestTOCGatedLines(t *testing.T) {
	d := report.DefaultDocument()
	d.IncludeThanks = true
	d.IncludeAnnexes = true
	d.IncludeGlossary = true // flag on, but glossary empty: line stays out

	out := renderSection(renderTOC, d)
	if !strings.Contains(out, "Remerciements") {
		t.Error("thanks line missing")
	}
	if !strings.Contains(out, "Annexes") {
		t.Error("annexes line missing")
	}
	if strings.Contains(out, "Glossaire") {
		t.Error("glossary line should require a non-empty glossary")
	}

	d.AddGlossaryEntry("API", "")
	out = renderSection(renderTOC, d)
	if !strings.Contains(out, "Glossaire") {
		t.Error("glossary line missing with entries present")
	}

	d.IncludeThanks = false
	d.IncludeAnnexes = false
	out = renderSection(renderTOC, d)
	if strings.Contains(out, "Remerciements") || strings.Contains(out, "Annexes") {
		t.Error("gated lines rendered with flags off")
	}
}

func TestFigureLines(t *testing.T) {
	d := report.DefaultDocument()
	d.AddFigure("Plan du réseau", "12")
	d.AddFigure("Organigramme", "")

	out := renderSection(renderFigures, d)
	if !strings.Contains(out, "Figure 1 : Plan du réseau") {
		t.Error("first figure line missing")
	}
	if !strings.Contains(out, "Figure 2 : Organigramme") {
		t.Error("figures must be 1-indexed by position")
	}
	if !strings.Contains(out, "p.-") {
		t.Error("absent page should show the dash placeholder")
	}
}

func TestGlossaryLines(t *testing.T) {
	d := report.DefaultDocument()
	d.AddGlossaryEntry("B", "second ajouté")
	d.AddGlossaryEntry("A", "premier resté second")

	out := renderSection(renderGlossary, d)
	// Stored order, not alphabetical.
	if strings.Index(out, "<strong>B</strong>") > strings.Index(out, "<strong>A</strong>") {
		t.Error("glossary should render in insertion order")
	}
	if !strings.Contains(out, "<strong>B</strong> : second ajouté") {
		t.Errorf("glossary line format wrong: %s", out)
	}
}

var barStyle = regexp.MustCompile(`left:([0-9.\-]+)%;width:([0-9.\-]+)%`)

func extractBars(t *testing.T, out string) [][2]float64 {
	t.Helper()
	var bars [][2]float64
	for _, m := range barStyle.FindAllStringSubmatch(out, -1) {
		left, err1 := strconv.ParseFloat(m[1], 64)
		width, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil {
			t.Fatalf("unparseable bar style %q", m[0])
		}
		bars = append(bars, [2]float64{left, width})
	}
	return bars
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 0.1
}

func TestScheduleScaling(t *testing.T) {
	d := report.DefaultDocument()
	d.AddScheduleTask("A", "2024-01-01", "2024-01-05")
	d.AddScheduleTask("B", "2024-01-03", "2024-01-10")

	out := renderSection(renderSchedule, d)
	bars := extractBars(t, out)
	if len(bars) != 2 {
		t.Fatalf("bars = %d, want 2", len(bars))
	}

	// Span is 9 days (01-01 to 01-10).
	if !approx(bars[0][0], 0) || !approx(bars[0][1], 100.0*4/9) {
		t.Errorf("task A bar = %v, want offset 0%% width about %.1f%%", bars[0], 100.0*4/9)
	}
	if !approx(bars[1][0], 100.0*2/9) || !approx(bars[1][1], 100.0*7/9) {
		t.Errorf("task B bar = %v, want offset about %.1f%% width about %.1f%%", bars[1], 100.0*2/9, 100.0*7/9)
	}
}

func TestScheduleSingleDaySpan(t *testing.T) {
	d := report.DefaultDocument()
	d.AddScheduleTask("Unique", "2024-06-01", "2024-06-01")

	out := renderSection(renderSchedule, d)
	bars := extractBars(t, out)
	if len(bars) != 1 {
		t.Fatalf("bars = %d, want 1", len(bars))
	}
	if !approx(bars[0][0], 0) {
		t.Errorf("offset = %v, want 0", bars[0][0])
	}
	// Span floors at one day; a same-day task still gets a visible bar
	// rather than a division error.
	if bars[0][1] < 0 {
		t.Errorf("width = %v, want non-negative", bars[0][1])
	}
}

func TestScheduleInvertedRangeRendersAsEntered(t *testing.T) {
	d := report.DefaultDocument()
	d.AddScheduleTask("Inversée", "2024-01-10", "2024-01-01")

	out := renderSection(renderSchedule, d)
	bars := extractBars(t, out)
	if len(bars) != 1 {
		t.Fatalf("bars = %d, want 1", len(bars))
	}
	if bars[0][1] >= 0 {
		t.Errorf("width = %v, inverted range should keep its negative width", bars[0][1])
	}
}

func TestScheduleUnparseableDates(t *testing.T) {
	d := report.DefaultDocument()
	d.AddScheduleTask("Cassée", "pas-une-date", "2024-01-05")
	d.AddScheduleTask("Valide", "2024-01-01", "2024-01-05")

	out := renderSection(renderSchedule, d)
	bars := extractBars(t, out)
	if len(bars) != 2 {
		t.Fatalf("bars = %d, want one row per task", len(bars))
	}
	// The broken task degrades to a full-width bar.
	if !approx(bars[0][0], 0) || !approx(bars[0][1], 100) {
		t.Errorf("broken-date bar = %v, want full width", bars[0])
	}
}

func TestScheduleSpanHelper(t *testing.T) {
	cases := []struct {
		tasks    []report.ScheduleTask
		wantDays float64
		wantSpan bool
	}{
		{nil, 1, false},
		{[]report.ScheduleTask{{Start: "x", End: "y"}}, 1, false},
		{[]report.ScheduleTask{{Start: "2024-01-01", End: "2024-01-01"}}, 1, true},
		{[]report.ScheduleTask{{Start: "2024-01-01", End: "2024-01-10"}}, 9, true},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("case%d", i), func(t *testing.T) {
			_, days, hasSpan := scheduleSpan(c.tasks)
			if hasSpan != c.wantSpan {
				t.Errorf("hasSpan = %v, want %v", hasSpan, c.wantSpan)
			}
			if days != c.wantDays {
				t.Errorf("days = %v, want %v", days, c.wantDays)
			}
		})
	}
}
