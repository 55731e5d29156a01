package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/mitosis/cell"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFirstDivision     BookmarkType = "first_division"
	BookmarkNewGeneration     BookmarkType = "new_generation"
	BookmarkTemplateExhausted BookmarkType = "template_exhausted"
)

// Bookmark marks a notable moment in a session.
type Bookmark struct {
	Type        BookmarkType
	Seq         int
	Description string
}

// LogBookmark logs the bookmark at info level.
func (b Bookmark) LogBookmark(logger *slog.Logger) {
	logger.Info("bookmark",
		"type", string(b.Type),
		"seq", b.Seq,
		"description", b.Description,
	)
}

// BookmarkDetector watches the event stream for notable moments.
type BookmarkDetector struct {
	divided    map[cell.Kind]bool
	generation map[string]int // cell id -> generation
	deepest    int
	exhausted  map[string]bool // templates already reported
}

// NewBookmarkDetector creates an empty detector.
func NewBookmarkDetector() *BookmarkDetector {
	return &BookmarkDetector{
		divided:    make(map[cell.Kind]bool),
		generation: make(map[string]int),
		exhausted:  make(map[string]bool),
	}
}

// Check inspects a numbered event and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(ev Event) []Bookmark {
	var bookmarks []Bookmark

	switch ev.Type {
	case EventCreate:
		bd.generation[ev.CellID] = 0

	case EventRegister:
		delete(bd.exhausted, ev.Template)

	case EventDivide:
		if b := bd.checkFirstDivision(ev); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkNewGeneration(ev); b != nil {
			bookmarks = append(bookmarks, *b)
		}

	case EventDivideFailed:
		// Only template seeds carry a template name on a refused division.
		if ev.Template != "" && !bd.exhausted[ev.Template] {
			bd.exhausted[ev.Template] = true
			bookmarks = append(bookmarks, Bookmark{
				Type:        BookmarkTemplateExhausted,
				Seq:         ev.Seq,
				Description: fmt.Sprintf("template %q can no longer produce cells (energy %d)", ev.Template, ev.Energy),
			})
		}
	}

	return bookmarks
}

func (bd *BookmarkDetector) checkFirstDivision(ev Event) *Bookmark {
	kind, err := cell.ParseKind(ev.Kind)
	if err != nil || bd.divided[kind] {
		return nil
	}
	bd.divided[kind] = true
	return &Bookmark{
		Type:        BookmarkFirstDivision,
		Seq:         ev.Seq,
		Description: fmt.Sprintf("first %s cell division (%s from %s)", kind, ev.CellID, ev.ParentID),
	}
}

func (bd *BookmarkDetector) checkNewGeneration(ev Event) *Bookmark {
	gen := bd.generation[ev.ParentID] + 1
	bd.generation[ev.CellID] = gen
	if gen <= bd.deepest {
		return nil
	}
	bd.deepest = gen
	return &Bookmark{
		Type:        BookmarkNewGeneration,
		Seq:         ev.Seq,
		Description: fmt.Sprintf("generation %d reached by %s", gen, ev.CellID),
	}
}
