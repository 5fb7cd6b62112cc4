// Package window composes windows on screen.
//
// The Manager owns every live window (through a Registry), the split
// layout tree, the normal focus, and a stack of popups. A popup, while
// present, takes input focus and is drawn over the whole base area after
// the layout. Windows created by a split are never removed; popups are
// removed when popped.
package window
