package report

import "testing"

func TestClone(t *testing.T) {
	d := DefaultDocument()
	d.LastName = "Martin"
	d.AddGlossaryEntry("API", "interface")
	d.SetImage(ImageCentral, "data:image/png;base64,AAAA")

	clone := d.Clone()
	if clone.LastName != "Martin" || len(clone.Glossary) != 1 {
		t.Fatal("clone lost data")
	}

	// Mutating the clone must not leak into the original.
	clone.Chapters[0].Title = "changed"
	clone.AddGlossaryEntry("B", "b")
	*clone.Images.CentralImage = "data:image/png;base64,BBBB"

	if d.Chapters[0].Title == "changed" {
		t.Error("clone shares chapter nodes with original")
	}
	if len(d.Glossary) != 1 {
		t.Error("clone shares glossary slice with original")
	}
	if *d.Images.CentralImage != "data:image/png;base64,AAAA" {
		t.Error("clone shares image pointer with original")
	}
}

func TestNormalizeReseedsEmptyOutline(t *testing.T) {
	d := &ReportDocument{}
	d.Normalize()

	if len(d.Chapters) != 6 {
		t.Errorf("chapters = %d, want default skeleton of 6", len(d.Chapters))
	}
	if d.Glossary == nil || d.Figures == nil || d.Schedule == nil {
		t.Error("collections should be non-nil after Normalize")
	}
	if d.CoverModel != CoverClassique {
		t.Errorf("cover model = %q, want classique", d.CoverModel)
	}
}

func TestFieldPatchApply(t *testing.T) {
	d := DefaultDocument()
	name := "Durand"
	off := false
	cover := CoverLuxe

	p := &FieldPatch{LastName: &name, IncludeTOC: &off, CoverModel: &cover}
	if !p.Apply(d) {
		t.Fatal("patch with fields should report changed")
	}
	if d.LastName != "Durand" {
		t.Errorf("last name = %q", d.LastName)
	}
	if d.IncludeTOC {
		t.Error("include_toc should be off")
	}
	if d.CoverModel != CoverLuxe {
		t.Errorf("cover = %q", d.CoverModel)
	}
	// Untouched fields keep their values.
	if !d.IncludeCover || d.Style.FontSize != 12 {
		t.Error("unrelated fields were modified")
	}

	if (&FieldPatch{}).Apply(d) {
		t.Error("empty patch should report unchanged")
	}
}

func TestFieldPatchStyleAndPage(t *testing.T) {
	d := DefaultDocument()
	style := DefaultStyle()
	style.FontSize = 11
	page := DefaultPage()
	page.ShowPageNumber = false

	p := &FieldPatch{Style: &style, Page: &page}
	if !p.Apply(d) {
		t.Fatal("patch not applied")
	}
	if d.Style.FontSize != 11 {
		t.Errorf("font size = %d", d.Style.FontSize)
	}
	if d.Page.ShowPageNumber {
		t.Error("show_page_number should be off")
	}
}
