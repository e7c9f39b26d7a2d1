package report

// DefaultMaxChapterLevel is how deep the outline may nest unless configured
// otherwise. Level 3 matches the current form; older deployments ran with 2.
const DefaultMaxChapterLevel = 3

// Placeholder values applied when an optional list-item field is left empty.
const (
	PlaceholderDefinition = "[Définition]"
	PlaceholderPage       = "-"
)

// DefaultOutline returns the fixed six-chapter skeleton seeded on first run.
func DefaultOutline() []*ChapterNode {
	return []*ChapterNode{
		{ID: 1, Title: "Introduction", Level: 1, Children: []*ChapterNode{}},
		{ID: 2, Title: "Présentation de l'entreprise", Level: 1, Children: []*ChapterNode{
			{ID: 21, Title: "Histoire et activités", Level: 2, Children: []*ChapterNode{}},
			{ID: 22, Title: "Organisation", Level: 2, Children: []*ChapterNode{}},
		}},
		{ID: 3, Title: "Missions et objectifs", Level: 1, Children: []*ChapterNode{}},
		{ID: 4, Title: "Travail réalisé", Level: 1, Children: []*ChapterNode{}},
		{ID: 5, Title: "Bilan", Level: 1, Children: []*ChapterNode{}},
		{ID: 6, Title: "Conclusion", Level: 1, Children: []*ChapterNode{}},
	}
}

// DefaultStyle returns the built-in typographic defaults.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		FontFamily:   "Times New Roman",
		FontSize:     12,
		LineSpacing:  1.5,
		Title1Size:   16,
		Title1Bold:   true,
		Title1Color:  "#1a365d",
		Title2Size:   14,
		Title2Bold:   true,
		Title2Color:  "#000000",
		Title3Size:   12,
		Title3Italic: true,
		Title3Color:  "#333333",
	}
}

// DefaultPage returns the built-in page layout defaults.
func DefaultPage() PageConfig {
	return PageConfig{
		MarginTop:       2.5,
		MarginBottom:    2.5,
		MarginLeft:      2.5,
		MarginRight:     2.5,
		ShowPageNumber:  true,
		ShowStudentName: true,
	}
}

// DefaultDocument returns a fully populated ReportDocument carrying every
// built-in default. Loading a stored snapshot overlays on top of this, so any
// field absent from an older snapshot keeps its default.
func DefaultDocument() *ReportDocument {
	return &ReportDocument{
		CoverModel:     CoverClassique,
		Chapters:       DefaultOutline(),
		Glossary:       []GlossaryEntry{},
		Figures:        []FigureEntry{},
		Schedule:       []ScheduleTask{},
		IncludeCover:   true,
		IncludeThanks:  true,
		IncludeTOC:     true,
		IncludeAnnexes: true,
		Style:          DefaultStyle(),
		Page:           DefaultPage(),
	}
}
