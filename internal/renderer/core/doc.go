// Package core provides the value types shared by the renderer, the
// backends and the widgets: colors, styles, cells and rectangles.
package core
