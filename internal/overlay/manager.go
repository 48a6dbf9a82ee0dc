package overlay

import "github.com/sigma/mirage/internal/gfx"

// Manager arbitrates the three overlays. Each is independently visible, but
// compositing follows a fixed priority: the workspace switcher suppresses the
// whole desktop pass, and the modal dialog layers above the search panel.
type Manager struct {
	Search   *Search
	Switcher *Switcher
	Modal    *Modal
}

// NewManager wires the overlays together.
func NewManager(catalog []CatalogEntry, spaces []Workspace, modalTitle string, modalLines []string) *Manager {
	return &Manager{
		Search:   NewSearch(catalog),
		Switcher: NewSwitcher(spaces),
		Modal:    NewModal(modalTitle, modalLines),
	}
}

// SuppressesDesktop reports whether the normal desktop pass must be skipped
// this frame.
func (m *Manager) SuppressesDesktop() bool {
	return m.Switcher.Visible()
}

// Update advances overlay-internal transitions. Called once per frame before
// scripted transitions are applied.
func (m *Manager) Update() {
	m.Switcher.Update()
}

// DrawSuppressing draws the switcher pass that replaces the desktop.
func (m *Manager) DrawSuppressing(s *gfx.Surface) {
	m.Switcher.Draw(s)
}

// DrawLayered draws the overlays that stack on the desktop pass, lowest
// priority first so the modal ends up on top.
func (m *Manager) DrawLayered(s *gfx.Surface) {
	m.Search.Draw(s)
	m.Modal.Draw(s)
}
