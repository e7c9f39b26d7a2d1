package report

import "time"

// Default titles for newly created outline nodes, by level.
var newNodeTitles = map[int]string{
	1: "Nouveau chapitre",
	2: "Nouvelle section",
	3: "Nouvelle sous-section",
}

// nextChapterID returns a fresh unique ID for the tree. IDs are creation
// timestamps, bumped past the current maximum so that rapid successive adds
// in the same millisecond (or restored trees with small seed IDs) never
// collide and deleted IDs are never handed out again.
func (d *ReportDocument) nextChapterID() int64 {
	id := time.Now().UnixMilli()
	if maxID := maxNodeID(d.Chapters); id <= maxID {
		id = maxID + 1
	}
	return id
}

func maxNodeID(nodes []*ChapterNode) int64 {
	var maxID int64
	for _, n := range nodes {
		if n.ID > maxID {
			maxID = n.ID
		}
		if childMax := maxNodeID(n.Children); childMax > maxID {
			maxID = childMax
		}
	}
	return maxID
}

// findNode walks the tree depth-first and returns the first node with the
// given ID, or nil.
func findNode(nodes []*ChapterNode, id int64) *ChapterNode {
	for _, n := range nodes {
		if n.ID == id {
			return n
		}
		if found := findNode(n.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// AddChapter appends a new level-1 chapter with a default title and returns it.
func (d *ReportDocument) AddChapter() *ChapterNode {
	node := &ChapterNode{
		ID:       d.nextChapterID(),
		Title:    newNodeTitles[1],
		Level:    1,
		Children: []*ChapterNode{},
	}
	d.Chapters = append(d.Chapters, node)
	return node
}

// AddSubChapter appends a child one level deeper under the node with the
// given ID. Returns nil without mutating when the parent does not exist or
// is already at maxLevel.
func (d *ReportDocument) AddSubChapter(parentID int64, maxLevel int) *ChapterNode {
	if maxLevel <= 0 {
		maxLevel = DefaultMaxChapterLevel
	}
	parent := findNode(d.Chapters, parentID)
	if parent == nil || parent.Level >= maxLevel {
		return nil
	}
	title := newNodeTitles[parent.Level+1]
	if title == "" {
		title = newNodeTitles[3]
	}
	node := &ChapterNode{
		ID:       d.nextChapterID(),
		Title:    title,
		Level:    parent.Level + 1,
		Children: []*ChapterNode{},
	}
	parent.Children = append(parent.Children, node)
	return node
}

// RenameNode updates the title of the node with the given ID. A miss is a
// no-op, not an error: the tree is already consistent.
func (d *ReportDocument) RenameNode(id int64, title string) bool {
	node := findNode(d.Chapters, id)
	if node == nil {
		return false
	}
	node.Title = title
	return true
}

// DeleteNode removes the node with the given ID together with its whole
// subtree, from whichever sibling sequence currently holds it.
func (d *ReportDocument) DeleteNode(id int64) bool {
	var del func(nodes *[]*ChapterNode) bool
	del = func(nodes *[]*ChapterNode) bool {
		for i, n := range *nodes {
			if n.ID == id {
				*nodes = append((*nodes)[:i], (*nodes)[i+1:]...)
				return true
			}
			if del(&n.Children) {
				return true
			}
		}
		return false
	}
	return del(&d.Chapters)
}

// MoveSibling swaps the top-level chapter at index with its neighbor in the
// given direction (-1 up, +1 down). Out-of-range targets are a no-op; there
// is no wraparound. Sub-levels are not reorderable.
func (d *ReportDocument) MoveSibling(index, direction int) bool {
	if direction != -1 && direction != 1 {
		return false
	}
	if index < 0 || index >= len(d.Chapters) {
		return false
	}
	target := index + direction
	if target < 0 || target >= len(d.Chapters) {
		return false
	}
	d.Chapters[index], d.Chapters[target] = d.Chapters[target], d.Chapters[index]
	return true
}

// CountNodes returns the total number of nodes in the outline tree.
func (d *ReportDocument) CountNodes() int {
	var count func(nodes []*ChapterNode) int
	count = func(nodes []*ChapterNode) int {
		n := len(nodes)
		for _, node := range nodes {
			n += count(node.Children)
		}
		return n
	}
	return count(d.Chapters)
}
