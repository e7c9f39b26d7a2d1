package report

import "testing"

func TestDefaultOutline(t *testing.T) {
	d := DefaultDocument()

	if len(d.Chapters) != 6 {
		t.Fatalf("default chapters = %d, want 6", len(d.Chapters))
	}
	for i, ch := range d.Chapters {
		if ch.Level != 1 {
			t.Errorf("chapter %d level = %d, want 1", i, ch.Level)
		}
	}
	// The second chapter carries the two default sub-sections.
	second := d.Chapters[1]
	if len(second.Children) != 2 {
		t.Fatalf("second chapter children = %d, want 2", len(second.Children))
	}
	for _, sub := range second.Children {
		if sub.Level != 2 {
			t.Errorf("sub-chapter level = %d, want 2", sub.Level)
		}
	}
	if d.CountNodes() != 8 {
		t.Errorf("CountNodes() = %d, want 8", d.CountNodes())
	}
}

func TestAddChapter(t *testing.T) {
	d := DefaultDocument()

	node := d.AddChapter()
	if node == nil {
		t.Fatal("AddChapter returned nil")
	}
	if node.Level != 1 {
		t.Errorf("level = %d, want 1", node.Level)
	}
	if node.Title != "Nouveau chapitre" {
		t.Errorf("title = %q", node.Title)
	}
	if len(d.Chapters) != 7 {
		t.Errorf("chapters = %d, want 7", len(d.Chapters))
	}
	if d.Chapters[6] != node {
		t.Error("new chapter should be appended last")
	}
}

func TestChapterIDsUnique(t *testing.T) {
	d := DefaultDocument()

	seen := map[int64]bool{}
	var walk func(nodes []*ChapterNode)
	walk = func(nodes []*ChapterNode) {
		for _, n := range nodes {
			if seen[n.ID] {
				t.Errorf("duplicate id %d", n.ID)
			}
			seen[n.ID] = true
			walk(n.Children)
		}
	}

	// Rapid successive adds must not collide even within one millisecond.
	for i := 0; i < 50; i++ {
		d.AddChapter()
	}
	d.AddSubChapter(d.Chapters[6].ID, 3)
	walk(d.Chapters)
}

func TestAddSubChapter(t *testing.T) {
	d := DefaultDocument()
	parent := d.Chapters[0]

	sub := d.AddSubChapter(parent.ID, 3)
	if sub == nil {
		t.Fatal("AddSubChapter returned nil")
	}
	if sub.Level != 2 {
		t.Errorf("level = %d, want 2", sub.Level)
	}
	if sub.Title != "Nouvelle section" {
		t.Errorf("title = %q", sub.Title)
	}

	subsub := d.AddSubChapter(sub.ID, 3)
	if subsub == nil {
		t.Fatal("level-3 add returned nil")
	}
	if subsub.Level != 3 {
		t.Errorf("level = %d, want 3", subsub.Level)
	}
	if subsub.Title != "Nouvelle sous-section" {
		t.Errorf("title = %q", subsub.Title)
	}

	// Max depth reached: no-op.
	if got := d.AddSubChapter(subsub.ID, 3); got != nil {
		t.Error("add below max level should be a no-op")
	}
	// Unknown parent: no-op.
	if got := d.AddSubChapter(999999, 3); got != nil {
		t.Error("add under missing parent should be a no-op")
	}
}

func TestAddSubChapterRespectsConfiguredDepth(t *testing.T) {
	d := DefaultDocument()
	sub := d.Chapters[1].Children[0]

	// With a two-level outline, a level-2 node cannot grow children.
	if got := d.AddSubChapter(sub.ID, 2); got != nil {
		t.Error("expected no-op at maxLevel=2")
	}
	if got := d.AddSubChapter(sub.ID, 3); got == nil {
		t.Error("expected child at maxLevel=3")
	}
}

func TestRenameNode(t *testing.T) {
	d := DefaultDocument()
	sub := d.Chapters[1].Children[1]

	if !d.RenameNode(sub.ID, "Équipe et gouvernance") {
		t.Fatal("rename of existing node failed")
	}
	if sub.Title != "Équipe et gouvernance" {
		t.Errorf("title = %q", sub.Title)
	}
	if d.RenameNode(424242, "x") {
		t.Error("rename of missing node should be a no-op")
	}
}

func TestDeleteNodeCascades(t *testing.T) {
	d := DefaultDocument()
	before := d.CountNodes()

	// Deleting the second chapter removes its two children as well.
	if !d.DeleteNode(d.Chapters[1].ID) {
		t.Fatal("delete failed")
	}
	if got := d.CountNodes(); got != before-3 {
		t.Errorf("node count = %d, want %d", got, before-3)
	}
	if len(d.Chapters) != 5 {
		t.Errorf("top-level chapters = %d, want 5", len(d.Chapters))
	}
}

func TestDeleteNestedNode(t *testing.T) {
	d := DefaultDocument()
	sub := d.Chapters[1].Children[0]

	if !d.DeleteNode(sub.ID) {
		t.Fatal("delete of nested node failed")
	}
	if len(d.Chapters[1].Children) != 1 {
		t.Errorf("children = %d, want 1", len(d.Chapters[1].Children))
	}
	if d.DeleteNode(sub.ID) {
		t.Error("second delete of same id should be a no-op")
	}
}

func TestMoveSibling(t *testing.T) {
	d := DefaultDocument()
	first := d.Chapters[0]
	second := d.Chapters[1]
	last := len(d.Chapters) - 1

	// Bounds: no wraparound.
	if d.MoveSibling(0, -1) {
		t.Error("moving first chapter up should be a no-op")
	}
	if d.MoveSibling(last, 1) {
		t.Error("moving last chapter down should be a no-op")
	}
	if d.MoveSibling(99, 1) || d.MoveSibling(-1, 1) {
		t.Error("out-of-range index should be a no-op")
	}
	if d.MoveSibling(1, 2) {
		t.Error("direction must be -1 or +1")
	}

	// Interior swap touches exactly the two adjacent entries.
	third := d.Chapters[2]
	if !d.MoveSibling(0, 1) {
		t.Fatal("interior move failed")
	}
	if d.Chapters[0] != second || d.Chapters[1] != first {
		t.Error("adjacent entries not swapped")
	}
	if d.Chapters[2] != third {
		t.Error("non-adjacent entry moved")
	}
}
