package report

import "encoding/json"

// Clone returns a deep copy of the document, used to hand out snapshots that
// the renderer and generation client can read without holding the session
// lock. A JSON round trip is cheap at outline scale and cannot drift from
// the wire format.
func (d *ReportDocument) Clone() *ReportDocument {
	data, err := json.Marshal(d)
	if err != nil {
		// Every field is a plain value or slice; marshalling cannot fail.
		panic("report: marshalling document: " + err.Error())
	}
	clone := &ReportDocument{}
	if err := json.Unmarshal(data, clone); err != nil {
		panic("report: unmarshalling document clone: " + err.Error())
	}
	return clone
}

// Normalize repairs a freshly loaded document: an empty outline is reseeded
// with the default skeleton and nil collections become empty so consumers
// never see a nil slice.
func (d *ReportDocument) Normalize() {
	if len(d.Chapters) == 0 {
		d.Chapters = DefaultOutline()
	}
	if d.Glossary == nil {
		d.Glossary = []GlossaryEntry{}
	}
	if d.Figures == nil {
		d.Figures = []FigureEntry{}
	}
	if d.Schedule == nil {
		d.Schedule = []ScheduleTask{}
	}
	if d.CoverModel == "" {
		d.CoverModel = CoverClassique
	}
}

// FieldPatch is a partial update of the document's scalar fields. Every field
// is a pointer so absence and explicit zero values are distinguishable; only
// non-nil fields are applied.
type FieldPatch struct {
	CoverModel *CoverTemplate `json:"cover_model"`

	FirstName    *string `json:"prenom"`
	LastName     *string `json:"nom"`
	Program      *string `json:"formation"`
	School       *string `json:"ecole"`
	AcademicYear *string `json:"annee_scolaire"`

	CompanyName       *string `json:"entreprise_nom"`
	CompanySector     *string `json:"entreprise_secteur"`
	CompanyCity       *string `json:"entreprise_ville"`
	SupervisorName    *string `json:"tuteur_nom"`
	SupervisorRole    *string `json:"tuteur_poste"`
	AcademicTutorName *string `json:"tuteur_academique_nom"`
	AcademicTutorRole *string `json:"tuteur_academique_poste"`

	StartDate *string `json:"date_debut"`
	EndDate   *string `json:"date_fin"`
	Subject   *string `json:"sujet_stage"`
	Position  *string `json:"poste"`

	IncludeCover    *bool `json:"include_cover"`
	IncludeThanks   *bool `json:"include_thanks"`
	IncludeTOC      *bool `json:"include_toc"`
	IncludeFigures  *bool `json:"include_figures_list"`
	IncludeAbstract *bool `json:"include_abstract"`
	IncludeGlossary *bool `json:"include_glossary"`
	IncludeSchedule *bool `json:"include_gantt"`
	IncludeAnnexes  *bool `json:"include_annexes"`

	ThanksText   *string `json:"thanks_text"`
	AbstractText *string `json:"abstract_text"`

	Style *StyleConfig `json:"style"`
	Page  *PageConfig  `json:"page"`
}

// Apply copies the patch's non-nil fields onto the document and reports
// whether anything was set.
func (p *FieldPatch) Apply(d *ReportDocument) bool {
	changed := false
	setS := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
			changed = true
		}
	}
	setB := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
			changed = true
		}
	}

	if p.CoverModel != nil {
		d.CoverModel = *p.CoverModel
		changed = true
	}

	setS(&d.FirstName, p.FirstName)
	setS(&d.LastName, p.LastName)
	setS(&d.Program, p.Program)
	setS(&d.School, p.School)
	setS(&d.AcademicYear, p.AcademicYear)

	setS(&d.CompanyName, p.CompanyName)
	setS(&d.CompanySector, p.CompanySector)
	setS(&d.CompanyCity, p.CompanyCity)
	setS(&d.SupervisorName, p.SupervisorName)
	setS(&d.SupervisorRole, p.SupervisorRole)
	setS(&d.AcademicTutorName, p.AcademicTutorName)
	setS(&d.AcademicTutorRole, p.AcademicTutorRole)

	setS(&d.StartDate, p.StartDate)
	setS(&d.EndDate, p.EndDate)
	setS(&d.Subject, p.Subject)
	setS(&d.Position, p.Position)

	setB(&d.IncludeCover, p.IncludeCover)
	setB(&d.IncludeThanks, p.IncludeThanks)
	setB(&d.IncludeTOC, p.IncludeTOC)
	setB(&d.IncludeFigures, p.IncludeFigures)
	setB(&d.IncludeAbstract, p.IncludeAbstract)
	setB(&d.IncludeGlossary, p.IncludeGlossary)
	setB(&d.IncludeSchedule, p.IncludeSchedule)
	setB(&d.IncludeAnnexes, p.IncludeAnnexes)

	setS(&d.ThanksText, p.ThanksText)
	setS(&d.AbstractText, p.AbstractText)

	if p.Style != nil {
		d.Style = *p.Style
		changed = true
	}
	if p.Page != nil {
		d.Page = *p.Page
		changed = true
	}

	return changed
}
