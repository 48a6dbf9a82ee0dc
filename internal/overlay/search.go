package overlay

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/sigma/mirage/internal/gfx"
)

// CatalogEntry is one searchable item in the fixed application catalog.
type CatalogEntry struct {
	Name     string
	Category string
}

// Result is a catalog entry that matched the current query, with the rune
// offsets to highlight when drawn.
type Result struct {
	CatalogEntry
	Highlight []int
}

// Search is the search panel overlay. Every query mutation synchronously
// recomputes the result list; the selection index resets to zero on each
// recompute and wraps circularly on navigation.
type Search struct {
	visible  bool
	query    strings.Builder
	catalog  []CatalogEntry
	results  []Result
	selected int

	x, y, w, h int
}

// NewSearch creates a hidden search overlay over the given catalog.
func NewSearch(catalog []CatalogEntry) *Search {
	s := &Search{catalog: catalog, x: 120, y: 100, w: 400, h: 300}
	s.recompute()
	return s
}

// Visible reports whether the overlay is shown.
func (s *Search) Visible() bool { return s.visible }

// Query returns the current query string.
func (s *Search) Query() string { return s.query.String() }

// Results returns the current result list.
func (s *Search) Results() []Result { return s.results }

// SelectedIndex returns the index of the selected result.
func (s *Search) SelectedIndex() int { return s.selected }

// Show opens the overlay with a fresh query.
func (s *Search) Show() {
	s.visible = true
	s.query.Reset()
	s.recompute()
}

// Hide closes the overlay. Query and results stay intact for reopening.
func (s *Search) Hide() {
	s.visible = false
}

// AppendChar appends one character to the query and recomputes results.
func (s *Search) AppendChar(ch rune) {
	s.query.WriteRune(ch)
	s.recompute()
}

// Backspace removes the last query character and recomputes results.
func (s *Search) Backspace() {
	q := []rune(s.query.String())
	if len(q) == 0 {
		s.recompute()
		return
	}
	s.query.Reset()
	s.query.WriteString(string(q[:len(q)-1]))
	s.recompute()
}

// MoveSelection moves the selection by direction, wrapping circularly. With
// an empty result list it is a no-op.
func (s *Search) MoveSelection(direction int) {
	n := len(s.results)
	if n == 0 {
		return
	}
	if direction > 0 {
		s.selected = (s.selected + 1) % n
	} else if direction < 0 {
		s.selected = (s.selected - 1 + n) % n
	}
}

// recompute rebuilds the result list: an empty query lists the whole catalog,
// otherwise entries where any word of the name starts with the query,
// case-insensitively. Highlight offsets come from fuzzy matching over the
// filtered names.
func (s *Search) recompute() {
	s.results = s.results[:0]
	s.selected = 0

	query := strings.ToLower(s.query.String())
	if query == "" {
		for _, e := range s.catalog {
			s.results = append(s.results, Result{CatalogEntry: e})
		}
		return
	}

	names := make([]string, 0, len(s.catalog))
	kept := make([]CatalogEntry, 0, len(s.catalog))
	for _, e := range s.catalog {
		if wordPrefixMatch(e.Name, query) {
			names = append(names, e.Name)
			kept = append(kept, e)
		}
	}

	highlights := make(map[string][]int, len(names))
	for _, m := range fuzzy.Find(query, names) {
		highlights[m.Str] = m.MatchedIndexes
	}

	for _, e := range kept {
		s.results = append(s.results, Result{CatalogEntry: e, Highlight: highlights[e.Name]})
	}
}

func wordPrefixMatch(name, query string) bool {
	for _, word := range strings.Fields(strings.ToLower(name)) {
		if strings.HasPrefix(word, query) {
			return true
		}
	}
	return false
}

// Draw renders the panel over the desktop pass.
func (s *Search) Draw(surface *gfx.Surface) {
	if !s.visible {
		return
	}

	surface.BlendRect(0, 0, surface.Width(), surface.Height(), gfx.Black, 0.5)

	surface.FillRoundedRect(s.x, s.y, s.w, s.h, gfx.Color{R: 245, G: 245, B: 245})
	surface.DrawOutline(s.x, s.y, s.w, s.h, gfx.Color{R: 200, G: 200, B: 200})

	// Query field with caret.
	surface.FillRoundedRect(s.x+20, s.y+20, s.w-40, 40, gfx.White)
	surface.DrawOutline(s.x+20, s.y+20, s.w-40, 40, gfx.Color{R: 180, G: 180, B: 180})
	query := s.Query()
	surface.DrawText(query, s.x+34, s.y+33, gfx.Black)
	caretX := s.x + 34 + surface.TextWidth(query)
	surface.FillRect(caretX, s.y+30, 2, 16, gfx.Blue)

	resultY := s.y + 80
	for i, r := range s.results {
		rowY := resultY + i*50
		nameColor, categoryColor := gfx.Black, gfx.Gray
		if i == s.selected {
			surface.FillRoundedRect(s.x+10, rowY-5, s.w-20, 40, gfx.Blue)
			nameColor, categoryColor = gfx.White, gfx.Color{R: 200, G: 200, B: 200}
		}

		surface.DrawText(r.Name, s.x+30, rowY+2, nameColor)
		// Re-draw the matched runes in the accent color.
		if i != s.selected {
			for _, idx := range r.Highlight {
				if idx < len(r.Name) {
					surface.DrawText(string(r.Name[idx]), s.x+30+idx*gfx.GlyphWidth, rowY+2, gfx.Blue)
				}
			}
		}
		surface.DrawText(r.Category, s.x+30, rowY+20, categoryColor)
	}
}
