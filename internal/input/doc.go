// Package input turns key events into commands.
//
// The Resolver is a small state machine over three modes. In Normal mode it
// parses a count, an optional operator and a motion; in Command mode it
// edits a command line; Insert mode accepts keys but does nothing with them
// yet. Escape always returns to Normal mode with all pending state cleared.
//
// Normal mode also consults a keymap of Bindings before the grammar. Only
// special or modified keys can be bound, so a binding never shadows the
// count, operator and motion letters.
package input
