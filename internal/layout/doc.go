// Package layout implements the split-pane layout tree.
//
// A tree is a binary tree whose leaves name windows and whose inner nodes
// split an area between two children. Nodes live in an arena and refer to
// each other by index, so the focused leaf can be found and replaced in
// place without recursive ownership, and traversal never recurses.
package layout
