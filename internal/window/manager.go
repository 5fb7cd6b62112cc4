package window

import (
	"fmt"

	"github.com/dshills/seqterm/internal/command"
	"github.com/dshills/seqterm/internal/layout"
	"github.com/dshills/seqterm/internal/renderer/core"
	"github.com/dshills/seqterm/internal/renderer/draw"
)

// Manager composes the registry, the layout tree and the popup stack.
//
// Invariants: every leaf of the tree and every popup id is live in the
// registry, and the focused id, when set, is a leaf of the tree.
type Manager struct {
	registry *Registry
	tree     *layout.Tree
	popups   PopupStack
	focused  ID
	hasFocus bool
}

// NewManager creates a manager whose layout is a single leaf holding root.
// The root window has focus.
func NewManager(root Window) *Manager {
	reg := NewRegistry()
	id := reg.Insert(root)
	return &Manager{
		registry: reg,
		tree:     layout.NewTree(id),
		focused:  id,
		hasFocus: true,
	}
}

// Focused returns the normal-mode focus, ignoring popups.
func (m *Manager) Focused() (ID, bool) {
	return m.focused, m.hasFocus
}

// Focus moves normal focus to id. It reports false, changing nothing, if
// id is not a leaf of the layout.
func (m *Manager) Focus(id ID) bool {
	if _, ok := m.tree.Find(id); !ok {
		return false
	}
	m.focused = id
	m.hasFocus = true
	return true
}

// Unfocus clears normal focus.
func (m *Manager) Unfocus() {
	m.hasFocus = false
}

// SplitCurrentWindow splits the focused leaf in dir, placing w second at
// an even ratio, and focuses w. It reports false, changing nothing, when
// no window is focused.
func (m *Manager) SplitCurrentWindow(dir layout.Direction, w Window) bool {
	if !m.hasFocus {
		return false
	}
	leaf, ok := m.tree.Find(m.focused)
	if !ok {
		panic(fmt.Sprintf("window: focused id %d is not in the layout", m.focused))
	}

	id := m.registry.Insert(w)
	if err := m.tree.Split(leaf, dir, layout.DefaultRatio, id); err != nil {
		panic("window: " + err.Error())
	}
	m.focused = id
	return true
}

// PushPopup registers w and puts it on top of the popup stack. The layout
// tree is not touched.
func (m *Manager) PushPopup(w Window) ID {
	id := m.registry.Insert(w)
	m.popups.Push(id)
	return id
}

// PopPopup removes the top popup from the stack and the registry.
func (m *Manager) PopPopup() (ID, bool) {
	id, ok := m.popups.Pop()
	if !ok {
		return 0, false
	}
	m.registry.Remove(id)
	return id, true
}

// IsPopupActive reports whether any popup is open.
func (m *Manager) IsPopupActive() bool {
	return m.popups.Len() > 0
}

// TopPopup returns the top popup window.
func (m *Manager) TopPopup() (ID, Window, bool) {
	id, ok := m.popups.Top()
	if !ok {
		return 0, nil, false
	}
	return id, m.registry.MustGet(id), true
}

// EffectiveFocus is the window that receives input: the top popup if any,
// else the focused leaf.
func (m *Manager) EffectiveFocus() (ID, bool) {
	if id, ok := m.popups.Top(); ok {
		return id, true
	}
	return m.focused, m.hasFocus
}

// HandleInput forwards cmd to the effective focus. It does nothing when
// nothing has focus.
func (m *Manager) HandleInput(cmd command.Local) {
	id, ok := m.EffectiveFocus()
	if !ok {
		return
	}
	m.registry.MustGet(id).HandleInput(cmd)
}

// Render draws the layout into area, then the top popup, if any, over
// the whole area.
func (m *Manager) Render(s draw.Surface, area core.Rect) {
	focus, hasFocus := m.EffectiveFocus()

	m.tree.Walk(area, func(id ID, rect core.Rect) {
		w := m.registry.MustGet(id)
		w.Render(draw.Clip(s, rect), rect, hasFocus && id == focus)
	})

	if id, ok := m.popups.Top(); ok {
		m.registry.MustGet(id).Render(draw.Clip(s, area), area, true)
	}
}

// Window returns the window with id, panicking if it is not live.
func (m *Manager) Window(id ID) Window {
	return m.registry.MustGet(id)
}

// Lookup returns the window with id.
func (m *Manager) Lookup(id ID) (Window, bool) {
	return m.registry.Lookup(id)
}

// Layout returns a copy of the layout tree.
func (m *Manager) Layout() *layout.Tree {
	return m.tree.Clone()
}

// Popups returns the popup ids bottom to top.
func (m *Manager) Popups() []ID {
	return m.popups.IDs()
}

// WindowCount returns the number of live windows, popups included.
func (m *Manager) WindowCount() int {
	return m.registry.Len()
}
