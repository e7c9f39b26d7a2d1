package report

// CoverTemplate names one of the cover page layout variants.
type CoverTemplate string

const (
	CoverClassique   CoverTemplate = "classique"
	CoverModerne     CoverTemplate = "moderne"
	CoverElegant     CoverTemplate = "elegant"
	CoverMinimaliste CoverTemplate = "minimaliste"
	CoverAcademique  CoverTemplate = "academique"
	CoverGeometrique CoverTemplate = "geometrique"
	CoverBicolore    CoverTemplate = "bicolore"
	CoverPro         CoverTemplate = "pro"
	CoverGradient    CoverTemplate = "gradient"
	CoverTimeline    CoverTemplate = "timeline"
	CoverCreative    CoverTemplate = "creative"
	CoverLuxe        CoverTemplate = "luxe"
)

// Covers lists every known cover template, default first.
var Covers = []CoverTemplate{
	CoverClassique, CoverModerne, CoverElegant, CoverMinimaliste,
	CoverAcademique, CoverGeometrique, CoverBicolore, CoverPro,
	CoverGradient, CoverTimeline, CoverCreative, CoverLuxe,
}

// ImageKey identifies one of the fixed image slots on the document.
type ImageKey string

const (
	ImageSchoolLogo  ImageKey = "logo_ecole"
	ImageCompanyLogo ImageKey = "logo_entreprise"
	ImageCentral     ImageKey = "image_centrale"
)

// ChapterNode is one entry of the chapter outline tree. Level 1 nodes live in
// the root sequence; children are always exactly one level deeper than their
// parent. IDs are unique across the whole tree and never reused.
type ChapterNode struct {
	ID       int64          `json:"id"`
	Title    string         `json:"title"`
	Level    int            `json:"level"`
	Children []*ChapterNode `json:"children"`
}

// GlossaryEntry is one term/definition pair. Insertion order is display order.
type GlossaryEntry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// FigureEntry is one line of the figure list.
type FigureEntry struct {
	Name string `json:"name"`
	Page string `json:"page"`
}

// ScheduleTask is one bar of the schedule chart. Dates are ISO days
// (YYYY-MM-DD) as submitted by the form; no start<=end ordering is enforced.
type ScheduleTask struct {
	Label string `json:"task"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ImageAssets holds the three uploadable image slots as data URIs.
// A nil pointer means the slot was never filled.
type ImageAssets struct {
	SchoolLogo   *string `json:"logo_ecole"`
	CompanyLogo  *string `json:"logo_entreprise"`
	CentralImage *string `json:"image_centrale"`
}

// StyleConfig holds the typographic settings of the generated document.
type StyleConfig struct {
	FontFamily   string  `json:"font_family"`
	FontSize     int     `json:"font_size"`
	LineSpacing  float64 `json:"line_spacing"`
	Title1Size   int     `json:"title1_size"`
	Title1Bold   bool    `json:"title1_bold"`
	Title1Color  string  `json:"title1_color"`
	Title2Size   int     `json:"title2_size"`
	Title2Bold   bool    `json:"title2_bold"`
	Title2Color  string  `json:"title2_color"`
	Title3Size   int     `json:"title3_size"`
	Title3Italic bool    `json:"title3_italic"`
	Title3Color  string  `json:"title3_color"`
}

// PageConfig holds page layout settings (margins in centimeters).
type PageConfig struct {
	MarginTop       float64 `json:"margin_top"`
	MarginBottom    float64 `json:"margin_bottom"`
	MarginLeft      float64 `json:"margin_left"`
	MarginRight     float64 `json:"margin_right"`
	ShowPageNumber  bool    `json:"show_page_number"`
	ShowStudentName bool    `json:"show_student_name"`
}

// ReportDocument is the aggregate root: the only unit of persistence and the
// only input to the preview renderer and the generation client. JSON field
// names follow the wire contract shared with the generation backend.
type ReportDocument struct {
	CoverModel CoverTemplate `json:"cover_model"`

	// Student
	FirstName    string `json:"prenom"`
	LastName     string `json:"nom"`
	Program      string `json:"formation"`
	School       string `json:"ecole"`
	AcademicYear string `json:"annee_scolaire"`

	// Company
	CompanyName       string `json:"entreprise_nom"`
	CompanySector     string `json:"entreprise_secteur"`
	CompanyCity       string `json:"entreprise_ville"`
	SupervisorName    string `json:"tuteur_nom"`
	SupervisorRole    string `json:"tuteur_poste"`
	AcademicTutorName string `json:"tuteur_academique_nom"`
	AcademicTutorRole string `json:"tuteur_academique_poste"`

	// Internship
	StartDate string `json:"date_debut"`
	EndDate   string `json:"date_fin"`
	Subject   string `json:"sujet_stage"`
	Position  string `json:"poste"`

	// Structure
	Chapters []*ChapterNode  `json:"chapters"`
	Glossary []GlossaryEntry `json:"glossary"`
	Figures  []FigureEntry   `json:"figures"`
	Schedule []ScheduleTask  `json:"ganttTasks"`

	// Section inclusion flags
	IncludeCover    bool `json:"include_cover"`
	IncludeThanks   bool `json:"include_thanks"`
	IncludeTOC      bool `json:"include_toc"`
	IncludeFigures  bool `json:"include_figures_list"`
	IncludeAbstract bool `json:"include_abstract"`
	IncludeGlossary bool `json:"include_glossary"`
	IncludeSchedule bool `json:"include_gantt"`
	IncludeAnnexes  bool `json:"include_annexes"`

	// Free-text bodies, Markdown. Optional: older snapshots do not carry
	// them and the preview falls back to placeholder copy.
	ThanksText   string `json:"thanks_text,omitempty"`
	AbstractText string `json:"abstract_text,omitempty"`

	Style  StyleConfig `json:"style"`
	Page   PageConfig  `json:"page"`
	Images ImageAssets `json:"logos"`
}

// Image returns the data URI stored under the given slot, or nil.
func (d *ReportDocument) Image(key ImageKey) *string {
	switch key {
	case ImageSchoolLogo:
		return d.Images.SchoolLogo
	case ImageCompanyLogo:
		return d.Images.CompanyLogo
	case ImageCentral:
		return d.Images.CentralImage
	}
	return nil
}
