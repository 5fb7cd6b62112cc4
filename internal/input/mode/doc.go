// Package mode defines the editor's input modes and the command-line
// text buffer used while in Command mode.
package mode
