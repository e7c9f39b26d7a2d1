package preview

import (
	"fmt"
	"strings"

	"github.com/moboufenzi-dev/rapport-stage-generator/internal/report"
)

// coverData carries the document fields every cover variant projects,
// pre-escaped and with placeholders already substituted for empty fields.
type coverData struct {
	Accent   string
	First    string
	Last     string
	Program  string
	School   string
	Year     string
	Company  string
	Sector   string
	City     string
	Tutor    string
	Academic string
	Start    string
	End      string
	Subject  string // empty when not set; variants hide their subject line

	SchoolLogo   string // data URI, empty when absent
	CompanyLogo  string
	CentralImage string
}

func newCoverData(d *report.ReportDocument) coverData {
	c := coverData{
		Accent:   accentColor(d),
		First:    orPlaceholder(d.FirstName, "[Prénom]"),
		Last:     orPlaceholder(d.LastName, "[Nom]"),
		Program:  orPlaceholder(d.Program, "[Formation]"),
		School:   orPlaceholder(d.School, "[École]"),
		Year:     orPlaceholder(d.AcademicYear, "[Année]"),
		Company:  orPlaceholder(d.CompanyName, "[Entreprise]"),
		Sector:   esc(d.CompanySector),
		City:     esc(d.CompanyCity),
		Tutor:    orPlaceholder(d.SupervisorName, "[Nom]"),
		Academic: orPlaceholder(d.AcademicTutorName, "[Nom]"),
		Start:    orPlaceholder(d.StartDate, "[Date]"),
		End:      orPlaceholder(d.EndDate, "[Date]"),
		Subject:  esc(strings.TrimSpace(d.Subject)),
	}
	if v := d.Images.SchoolLogo; v != nil {
		c.SchoolLogo = esc(*v)
	}
	if v := d.Images.CompanyLogo; v != nil {
		c.CompanyLogo = esc(*v)
	}
	if v := d.Images.CentralImage; v != nil {
		c.CentralImage = esc(*v)
	}
	return c
}

// Name returns the student's full display name.
func (c coverData) Name() string {
	return c.First + " " + c.Last
}

// logoBox renders one small logo slot, empty when nothing was uploaded.
func logoBox(dataURI string) string {
	if dataURI == "" {
		return `<div class="preview-logo-sm"></div>`
	}
	return fmt.Sprintf(`<div class="preview-logo-sm"><img src="%s"></div>`, dataURI)
}

// renderCover dispatches on the document's cover template. Unknown template
// identifiers fall back to the classique layout.
func renderCover(b *strings.Builder, d *report.ReportDocument) {
	c := newCoverData(d)
	switch d.CoverModel {
	case report.CoverModerne:
		coverModerne(b, c)
	case report.CoverElegant:
		coverElegant(b, c)
	case report.CoverMinimaliste:
		coverMinimaliste(b, c)
	case report.CoverAcademique:
		coverAcademique(b, c)
	case report.CoverGeometrique:
		coverGeometrique(b, c)
	case report.CoverBicolore:
		coverBicolore(b, c)
	case report.CoverPro:
		coverPro(b, c)
	case report.CoverGradient:
		coverGradient(b, c)
	case report.CoverTimeline:
		coverTimeline(b, c)
	case report.CoverCreative:
		coverCreative(b, c)
	case report.CoverLuxe:
		coverLuxe(b, c)
	default:
		coverClassique(b, c)
	}
}

func coverClassique(b *strings.Builder, c coverData) {
	b.WriteString(`<div class="preview-page preview-cover-classique">`)
	fmt.Fprintf(b, `<div class="preview-header-bar">%s%s</div>`, logoBox(c.SchoolLogo), logoBox(c.CompanyLogo))

	b.WriteString(`<div class="preview-cover">`)
	fmt.Fprintf(b, `<div class="preview-cover-title" style="color:%s;">RAPPORT DE STAGE</div>`, c.Accent)
	if c.Subject != "" {
		fmt.Fprintf(b, `<p class="preview-cover-subject" style="color:%s;">%s</p>`, c.Accent, c.Subject)
	}
	fmt.Fprintf(b, `<p class="preview-cover-program">%s</p>`, c.Program)
	fmt.Fprintf(b, `<div class="preview-rule" style="border-color:%s;"></div>`, c.Accent)
	if c.CentralImage != "" {
		fmt.Fprintf(b, `<div class="preview-cover-image"><img src="%s"></div>`, c.CentralImage)
	}
	fmt.Fprintf(b, `<p class="preview-cover-name"><strong>%s</strong></p>`, c.Name())
	fmt.Fprintf(b, `<p>%s</p><p class="preview-cover-year">Année %s</p>`, c.School, c.Year)
	fmt.Fprintf(b, `<div class="preview-rule" style="border-color:%s;"></div>`, c.Accent)
	fmt.Fprintf(b, `<p>Stage chez</p><p class="preview-cover-company" style="color:%s;">%s</p>`, c.Accent, c.Company)
	fmt.Fprintf(b, `<p>%s</p><p>%s au %s</p>`, orNonEmpty(c.City, "[Ville]"), c.Start, c.End)
	b.WriteString(`</div>`)

	fmt.Fprintf(b, `<div class="preview-tutors">`+
		`<div><span>Tuteur entreprise</span><strong>%s</strong></div>`+
		`<div><span>Tuteur académique</span><strong>%s</strong></div></div>`, c.Tutor, c.Academic)
	b.WriteString(`</div>`)
}

func coverModerne(b *strings.Builder, c coverData) {
	b.WriteString(`<div class="preview-page preview-cover-moderne">`)
	if c.CentralImage != "" {
		fmt.Fprintf(b, `<div class="preview-banner"><img src="%s"></div>`, c.CentralImage)
	} else {
		fmt.Fprintf(b, `<div class="preview-banner" style="background:linear-gradient(135deg,%s20,%s40);"></div>`, c.Accent, c.Accent)
	}

	b.WriteString(`<div class="preview-cover preview-centered">`)
	fmt.Fprintf(b, `<div class="preview-title-main" style="color:%s;">RAPPORT</div><div class="preview-title-sub">DE STAGE</div>`, c.Accent)
	if c.Subject != "" {
		fmt.Fprintf(b, `<p class="preview-cover-subject" style="color:%s;">%s</p>`, c.Accent, c.Subject)
	}
	fmt.Fprintf(b, `<p><strong>%s</strong></p><p>%s</p><p class="preview-muted">%s &bull; %s</p>`, c.Name(), c.Program, c.School, c.Year)
	b.WriteString(`</div>`)

	fmt.Fprintf(b, `<div class="preview-logo-row">%s<span class="preview-muted">&rarr;</span>%s</div>`, logoBox(c.SchoolLogo), logoBox(c.CompanyLogo))
	fmt.Fprintf(b, `<div class="preview-centered"><p><strong>%s</strong></p><p class="preview-muted">%s %s</p>`+
		`<p style="color:%s;">%s &mdash; %s</p></div>`, c.Company, c.Sector, c.City, c.Accent, c.Start, c.End)
	b.WriteString(`</div>`)
}

func coverElegant(b *strings.Builder, c coverData) {
	b.WriteString(`<div class="preview-page preview-cover-elegant">`)
	fmt.Fprintf(b, `<div class="preview-side-rule" style="background:%s;"></div>`, c.Accent)

	b.WriteString(`<div class="preview-cover-body">`)
	fmt.Fprintf(b, `<div class="preview-logo-spread">%s%s</div>`, logoBox(c.SchoolLogo), logoBox(c.CompanyLogo))
	fmt.Fprintf(b, `<div class="preview-title-main" style="color:%s;">RAPPORT</div><div class="preview-title-sub">DE STAGE</div>`, c.Accent)
	if c.Subject != "" {
		fmt.Fprintf(b, `<p class="preview-cover-subject preview-italic">%s</p>`, c.Subject)
	}
	fmt.Fprintf(b, `<div class="preview-rule" style="border-color:%s;"></div>`, c.Accent)
	fmt.Fprintf(b, `<p><strong>%s</strong></p><p class="preview-italic">%s</p><p class="preview-muted">%s | %s</p>`, c.Name(), c.Program, c.School, c.Year)
	fmt.Fprintf(b, `<p class="preview-cover-company" style="color:%s;">%s</p><p class="preview-muted">%s</p>`, c.Accent, c.Company, c.City)
	fmt.Fprintf(b, `<p><strong>%s &rarr; %s</strong></p>`, c.Start, c.End)
	b.WriteString(`</div></div>`)
}

func coverMinimaliste(b *strings.Builder, c coverData) {
	b.WriteString(`<div class="preview-page preview-cover-minimaliste preview-centered">`)
	fmt.Fprintf(b, `<div class="preview-title-main" style="color:%s;">RAPPORT DE STAGE</div>`, c.Accent)
	fmt.Fprintf(b, `<div class="preview-dash-rule" style="color:%s;">&#9472;&#9472;&#9472;&#9472;&#9472;</div>`, c.Accent)
	if c.Subject != "" {
		fmt.Fprintf(b, `<p class="preview-cover-subject preview-italic">%s</p>`, c.Subject)
	}
	fmt.Fprintf(b, `<p><strong>%s</strong></p><p class="preview-muted">%s</p>`, c.Name(), c.Program)
	fmt.Fprintf(b, `<div class="preview-footnote"><p>%s</p><p>%s &mdash; %s</p></div>`, c.Company, c.Start, c.End)
	b.WriteString(`</div>`)
}

func coverAcademique(b *strings.Builder, c coverData) {
	b.WriteString(`<div class="preview-page preview-cover-academique">`)
	fmt.Fprintf(b, `<div class="preview-frame-outer" style="border-color:%s;"><div class="preview-frame-inner" style="border-color:%s;">`, c.Accent, c.Accent)
	fmt.Fprintf(b, `<div class="preview-logo-spread">%s%s</div>`, logoBox(c.SchoolLogo), logoBox(c.CompanyLogo))
	fmt.Fprintf(b, `<p class="preview-cover-school" style="color:%s;"><strong>%s</strong></p><p>%s</p>`, c.Accent, c.School, c.Program)
	fmt.Fprintf(b, `<div class="preview-title-main" style="color:%s;">RAPPORT DE STAGE</div>`, c.Accent)
	if c.Subject != "" {
		fmt.Fprintf(b, `<p class="preview-cover-subject preview-italic">%s</p>`, c.Subject)
	}
	fmt.Fprintf(b, `<p class="preview-muted">Présenté par</p><p><strong>%s</strong></p>`, c.Name())
	fmt.Fprintf(b, `<p>Stage chez %s</p><p class="preview-muted">%s au %s</p>`, c.Company, c.Start, c.End)
	fmt.Fprintf(b, `<p class="preview-cover-year" style="color:%s;">%s</p>`, c.Accent, c.Year)
	b.WriteString(`</div></div></div>`)
}

func coverGeometrique(b *strings.Builder, c coverData) {
	b.WriteString(`<div class="preview-page preview-cover-geometrique">`)
	fmt.Fprintf(b, `<div class="preview-corner-shape" style="background:linear-gradient(135deg,%s 50%%,transparent 50%%);"></div>`, c.Accent)
	fmt.Fprintf(b, `<div class="preview-header-bar">%s<div class="preview-year-block" style="background:%s;">%s</div></div>`, logoBox(c.SchoolLogo), c.Accent, c.Year)
	fmt.Fprintf(b, `<div class="preview-title-main" style="color:%s;">RAPPORT DE STAGE</div>`, c.Accent)
	if c.Subject != "" {
		fmt.Fprintf(b, `<p class="preview-cover-subject preview-italic">%s</p>`, c.Subject)
	}
	fmt.Fprintf(b, `<div class="preview-accent-bar" style="background:%s;"></div>`, c.Accent)
	fmt.Fprintf(b, `<p><strong>%s</strong></p><p>%s</p><p class="preview-muted">%s</p>`, c.Name(), c.Program, c.School)
	fmt.Fprintf(b, `<p><span class="preview-muted">Entreprise :</span> <strong>%s</strong></p><p class="preview-muted">%s au %s</p>`, c.Company, c.Start, c.End)
	b.WriteString(`</div>`)
}

func coverBicolore(b *strings.Builder, c coverData) {
	b.WriteString(`<div class="preview-page preview-cover-bicolore">`)
	fmt.Fprintf(b, `<div class="preview-split-left" style="background:%s;">`, c.Accent)
	b.WriteString(logoBox(c.SchoolLogo))
	fmt.Fprintf(b, `<div class="preview-split-word">STAGE</div><p>%s</p><p>%s<br>&mdash;<br>%s</p>`, c.Year, c.Start, c.End)
	b.WriteString(logoBox(c.CompanyLogo))
	b.WriteString(`</div>`)

	b.WriteString(`<div class="preview-split-right">`)
	fmt.Fprintf(b, `<div class="preview-title-main" style="color:%s;">RAPPORT<br>DE STAGE</div>`, c.Accent)
	if c.Subject != "" {
		fmt.Fprintf(b, `<p class="preview-cover-subject preview-italic">%s</p>`, c.Subject)
	}
	fmt.Fprintf(b, `<p><strong>%s</strong></p><p>%s</p><p class="preview-muted">%s</p>`, c.Name(), c.Program, c.School)
	fmt.Fprintf(b, `<p class="preview-cover-company" style="color:%s;">%s</p>`, c.Accent, c.Company)
	b.WriteString(`</div></div>`)
}

func coverPro(b *strings.Builder, c coverData) {
	b.WriteString(`<div class="preview-page preview-cover-pro">`)
	fmt.Fprintf(b, `<div class="preview-band" style="background:%s;">%s<span>%s</span>%s</div>`, c.Accent, logoBox(c.SchoolLogo), c.Year, logoBox(c.CompanyLogo))

	b.WriteString(`<div class="preview-cover preview-centered">`)
	fmt.Fprintf(b, `<div class="preview-title-main" style="color:%s;">RAPPORT DE STAGE</div>`, c.Accent)
	if c.Subject != "" {
		fmt.Fprintf(b, `<p class="preview-cover-subject preview-italic">%s</p>`, c.Subject)
	}
	fmt.Fprintf(b, `<p><strong>%s</strong></p><p class="preview-muted">%s &bull; %s</p>`, c.Name(), c.Program, c.School)
	fmt.Fprintf(b, `<div class="preview-info-table">`+
		`<div><span>Entreprise</span><strong>%s</strong></div>`+
		`<div><span>Période</span>%s &mdash; %s</div>`+
		`<div><span>Tuteur</span>%s</div></div>`, c.Company, c.Start, c.End, c.Tutor)
	b.WriteString(`</div>`)

	fmt.Fprintf(b, `<div class="preview-footer-band" style="border-color:%s;"><span class="preview-muted">%s %s</span></div>`, c.Accent, c.Company, c.City)
	b.WriteString(`</div>`)
}

func coverGradient(b *strings.Builder, c coverData) {
	b.WriteString(`<div class="preview-page preview-cover-gradient">`)
	fmt.Fprintf(b, `<div class="preview-band preview-centered" style="background:linear-gradient(135deg,%s 0%%,#667eea 50%%,#764ba2 100%%);">`, c.Accent)
	b.WriteString(`<div class="preview-title-main preview-on-dark">RAPPORT DE STAGE</div>`)
	if c.Subject != "" {
		fmt.Fprintf(b, `<p class="preview-cover-subject preview-on-dark preview-italic">%s</p>`, c.Subject)
	}
	b.WriteString(`</div>`)

	fmt.Fprintf(b, `<div class="preview-logo-row">%s%s</div>`, logoBox(c.SchoolLogo), logoBox(c.CompanyLogo))
	b.WriteString(`<div class="preview-centered">`)
	fmt.Fprintf(b, `<p><strong>%s</strong></p><p class="preview-muted">%s</p><p class="preview-muted">%s &bull; %s</p>`, c.Name(), c.Program, c.School, c.Year)
	fmt.Fprintf(b, `<p class="preview-cover-company" style="color:%s;">%s</p><p class="preview-muted">%s &mdash; %s</p>`, c.Accent, c.Company, c.Start, c.End)
	b.WriteString(`</div></div>`)
}

func coverTimeline(b *strings.Builder, c coverData) {
	b.WriteString(`<div class="preview-page preview-cover-timeline">`)
	fmt.Fprintf(b, `<div class="preview-timeline-rail">`+
		`<div class="preview-timeline-dot" style="background:%s;"></div><span>%s</span>`+
		`<div class="preview-timeline-line" style="background:linear-gradient(to bottom,%s,#818cf8);"></div>`+
		`<span>%s</span><div class="preview-timeline-dot" style="background:#818cf8;"></div></div>`,
		c.Accent, dayOfMonth(c.Start), c.Accent, dayOfMonth(c.End))

	b.WriteString(`<div class="preview-cover-body">`)
	fmt.Fprintf(b, `<div class="preview-logo-spread">%s%s</div>`, logoBox(c.SchoolLogo), logoBox(c.CompanyLogo))
	fmt.Fprintf(b, `<div class="preview-title-main" style="color:%s;">RAPPORT DE STAGE</div>`, c.Accent)
	if c.Subject != "" {
		fmt.Fprintf(b, `<p class="preview-cover-subject preview-italic">%s</p>`, c.Subject)
	}
	fmt.Fprintf(b, `<p><strong>%s</strong></p><p class="preview-muted">%s</p>`, c.Name(), c.Program)
	fmt.Fprintf(b, `<p class="preview-cover-company" style="color:%s;">%s</p>`, c.Accent, c.Company)
	b.WriteString(`</div></div>`)
}

func coverCreative(b *strings.Builder, c coverData) {
	b.WriteString(`<div class="preview-page preview-cover-creative">`)
	b.WriteString(`<div class="preview-circle preview-circle-top"></div><div class="preview-circle preview-circle-bottom"></div>`)
	fmt.Fprintf(b, `<div class="preview-logo-spread">%s%s</div>`, logoBox(c.SchoolLogo), logoBox(c.CompanyLogo))

	b.WriteString(`<div class="preview-cover preview-centered">`)
	fmt.Fprintf(b, `<div class="preview-title-main" style="color:%s;">RAPPORT</div><div class="preview-title-sub">DE STAGE</div>`, c.Accent)
	b.WriteString(`<div class="preview-gradient-rule"></div>`)
	if c.Subject != "" {
		fmt.Fprintf(b, `<p class="preview-cover-subject preview-italic">&laquo; %s &raquo;</p>`, c.Subject)
	}
	fmt.Fprintf(b, `<p><strong>%s</strong></p><p class="preview-muted">%s</p><p>%s &#10038; %s</p>`, c.Name(), c.Program, c.School, c.Year)
	fmt.Fprintf(b, `<div class="preview-thin-rule"></div><p class="preview-cover-company" style="color:%s;">%s</p><p class="preview-muted">%s &rarr; %s</p>`, c.Accent, c.Company, c.Start, c.End)
	b.WriteString(`</div></div>`)
}

const goldAccent = "#b8860b"

func coverLuxe(b *strings.Builder, c coverData) {
	b.WriteString(`<div class="preview-page preview-cover-luxe">`)
	fmt.Fprintf(b, `<div class="preview-frame-outer" style="border-color:%s;"><div class="preview-frame-inner" style="border-color:%s;">`, goldAccent, goldAccent)
	fmt.Fprintf(b, `<div class="preview-logo-spread">%s%s</div>`, logoBox(c.SchoolLogo), logoBox(c.CompanyLogo))
	fmt.Fprintf(b, `<div class="preview-ornament" style="color:%s;">&#9671;</div>`, goldAccent)
	fmt.Fprintf(b, `<div class="preview-title-main preview-spaced" style="color:%s;">RAPPORT DE STAGE</div>`, goldAccent)
	if c.Subject != "" {
		fmt.Fprintf(b, `<p class="preview-cover-subject preview-italic preview-centered">&laquo; %s &raquo;</p>`, c.Subject)
	}
	fmt.Fprintf(b, `<div class="preview-fade-rule" style="background:linear-gradient(90deg,transparent,%s,transparent);"></div>`, goldAccent)
	fmt.Fprintf(b, `<div class="preview-centered"><p><strong>%s</strong></p><p class="preview-muted">%s</p><p class="preview-muted">%s | %s</p></div>`, c.Name(), c.Program, c.School, c.Year)
	fmt.Fprintf(b, `<div class="preview-centered"><p class="preview-cover-company" style="color:%s;">%s</p><p class="preview-muted">%s</p><p>%s &mdash; %s</p></div>`, goldAccent, c.Company, c.City, c.Start, c.End)
	b.WriteString(`</div></div></div>`)
}

// orNonEmpty falls back to the placeholder when an already-escaped value is
// empty (used where coverData keeps the raw value optional).
func orNonEmpty(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// dayOfMonth extracts the day component of an ISO date for the timeline
// rail, matching the "split on dash" behavior of the form.
func dayOfMonth(isoDate string) string {
	parts := strings.Split(isoDate, "-")
	if len(parts) == 3 {
		return parts[2]
	}
	return ""
}
