package preview

import (
	"strings"
	"testing"

	"github.com/moboufenzi-dev/rapport-stage-generator/internal/report"
)

func TestRenderIdempotent(t *testing.T) {
	d := report.DefaultDocument()
	d.FirstName = "Camille"
	d.LastName = "Martin"
	d.IncludeGlossary = true
	d.AddGlossaryEntry("CI", "intégration continue")
	d.IncludeSchedule = true
	d.AddScheduleTask("Découverte", "2024-01-01", "2024-01-05")
	d.SetImage(report.ImageSchoolLogo, "data:image/png;base64,AAAA")

	first := Render(d)
	second := Render(d)
	if first != second {
		t.Error("two renders of the same snapshot differ")
	}
	if first == "" {
		t.Error("render produced no output")
	}
}

func TestRenderAllSectionsOff(t *testing.T) {
	d := report.DefaultDocument()
	d.IncludeCover = false
	d.IncludeThanks = false
	d.IncludeTOC = false
	d.IncludeAnnexes = false

	if got := Render(d); got != EmptyMessage {
		t.Errorf("render with no sections = %q, want empty message", got)
	}
}

func TestRenderSectionOrder(t *testing.T) {
	d := report.DefaultDocument()
	d.IncludeFigures = true
	d.IncludeGlossary = true
	d.IncludeSchedule = true
	d.IncludeAbstract = true
	d.AddFigure("Schéma réseau", "4")
	d.AddGlossaryEntry("VPN", "réseau privé virtuel")
	d.AddScheduleTask("Audit", "2024-03-01", "2024-03-15")

	out := Render(d)
	order := []string{
		"RAPPORT DE STAGE",
		"Remerciements",
		"Table des matières",
		"Résumé",
		"Liste des figures",
		"Diagramme de Gantt",
		"Glossaire",
	}
	pos := -1
	for _, marker := range order {
		idx := strings.Index(out, marker)
		if idx < 0 {
			t.Fatalf("missing section marker %q", marker)
		}
		if idx < pos {
			t.Errorf("section %q out of order", marker)
		}
		pos = idx
	}
}

func TestRenderEmptySectionsOmitted(t *testing.T) {
	d := report.DefaultDocument()
	d.IncludeCover = false
	d.IncludeThanks = false
	d.IncludeTOC = false
	d.IncludeAnnexes = false
	// Flags on, collections empty: sections stay out.
	d.IncludeFigures = true
	d.IncludeGlossary = true
	d.IncludeSchedule = true

	if got := Render(d); got != EmptyMessage {
		t.Errorf("empty collections should render nothing, got %q", got)
	}
}

func TestRenderTotalOverDegenerateShapes(t *testing.T) {
	// Render must never panic, whatever the document shape.
	docs := []*report.ReportDocument{
		{},
		{IncludeCover: true},
		{IncludeTOC: true, Chapters: []*report.ChapterNode{{ID: 1, Title: "", Level: 1}}},
		{IncludeSchedule: true, Schedule: []report.ScheduleTask{{Label: "x", Start: "garbage", End: "also"}}},
		{IncludeGlossary: true, Glossary: []report.GlossaryEntry{{}}},
	}
	for i, d := range docs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("doc %d: render panicked: %v", i, r)
				}
			}()
			Render(d)
		}()
	}
}

func TestRenderEscapesUserText(t *testing.T) {
	d := report.DefaultDocument()
	d.FirstName = `<script>alert(1)</script>`
	d.IncludeGlossary = true
	d.AddGlossaryEntry(`<b>terme</b>`, "déf")

	out := Render(d)
	if strings.Contains(out, "<script>") || strings.Contains(out, "<b>terme</b>") {
		t.Error("user-supplied markup leaked unescaped into the preview")
	}
}

func TestAccentColorFiltersHostileValues(t *testing.T) {
	d := report.DefaultDocument()
	d.Style.Title1Color = `red;"'><script>`
	if got := accentColor(d); got != DefaultAccent {
		t.Errorf("hostile color = %q, want default accent", got)
	}

	d.Style.Title1Color = "#4a90d9"
	if got := accentColor(d); got != "#4a90d9" {
		t.Errorf("valid color = %q", got)
	}

	d.Style.Title1Color = ""
	if got := accentColor(d); got != DefaultAccent {
		t.Errorf("empty color = %q, want default accent", got)
	}
}

func TestRenderThanksAndAbstractMarkdown(t *testing.T) {
	d := report.DefaultDocument()
	d.IncludeAbstract = true
	d.ThanksText = "Merci à **toute** l'équipe."
	d.AbstractText = "Un stage de *six mois*."

	out := Render(d)
	if !strings.Contains(out, "<strong>toute</strong>") {
		t.Error("thanks markdown not rendered")
	}
	if !strings.Contains(out, "<em>six mois</em>") {
		t.Error("abstract markdown not rendered")
	}

	// Absent bodies fall back to placeholder copy.
	d.ThanksText = ""
	d.AbstractText = ""
	out = Render(d)
	if !strings.Contains(out, "[Texte des remerciements...]") || !strings.Contains(out, "[Résumé du rapport...]") {
		t.Error("missing placeholder copy for empty bodies")
	}
}
