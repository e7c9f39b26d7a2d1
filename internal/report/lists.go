package report

import "strings"

// AddGlossaryEntry appends a term/definition pair. The term is required
// (non-empty after trimming); an empty definition falls back to a
// placeholder. Returns false when the entry was rejected.
func (d *ReportDocument) AddGlossaryEntry(term, definition string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return false
	}
	definition = strings.TrimSpace(definition)
	if definition == "" {
		definition = PlaceholderDefinition
	}
	d.Glossary = append(d.Glossary, GlossaryEntry{Term: term, Definition: definition})
	return true
}

// DeleteGlossaryEntry removes the entry at index. Out of range is a no-op.
func (d *ReportDocument) DeleteGlossaryEntry(index int) bool {
	if index < 0 || index >= len(d.Glossary) {
		return false
	}
	d.Glossary = append(d.Glossary[:index], d.Glossary[index+1:]...)
	return true
}

// AddFigure appends a figure list entry. The name is required; an empty page
// number falls back to a dash.
func (d *ReportDocument) AddFigure(name, page string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	page = strings.TrimSpace(page)
	if page == "" {
		page = PlaceholderPage
	}
	d.Figures = append(d.Figures, FigureEntry{Name: name, Page: page})
	return true
}

// DeleteFigure removes the figure at index. Out of range is a no-op.
func (d *ReportDocument) DeleteFigure(index int) bool {
	if index < 0 || index >= len(d.Figures) {
		return false
	}
	d.Figures = append(d.Figures[:index], d.Figures[index+1:]...)
	return true
}

// AddScheduleTask appends a schedule bar. All three fields are required.
// Start/end ordering is deliberately not validated; the chart renders
// whatever range was entered.
func (d *ReportDocument) AddScheduleTask(label, start, end string) bool {
	label = strings.TrimSpace(label)
	if label == "" || start == "" || end == "" {
		return false
	}
	d.Schedule = append(d.Schedule, ScheduleTask{Label: label, Start: start, End: end})
	return true
}

// DeleteScheduleTask removes the task at index. Out of range is a no-op.
func (d *ReportDocument) DeleteScheduleTask(index int) bool {
	if index < 0 || index >= len(d.Schedule) {
		return false
	}
	d.Schedule = append(d.Schedule[:index], d.Schedule[index+1:]...)
	return true
}

// SetImage stores a data URI under the given slot, overwriting any previous
// value. Unknown keys are rejected.
func (d *ReportDocument) SetImage(key ImageKey, dataURI string) bool {
	if dataURI == "" {
		return false
	}
	switch key {
	case ImageSchoolLogo:
		d.Images.SchoolLogo = &dataURI
	case ImageCompanyLogo:
		d.Images.CompanyLogo = &dataURI
	case ImageCentral:
		d.Images.CentralImage = &dataURI
	default:
		return false
	}
	return true
}
