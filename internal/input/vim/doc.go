// Package vim holds the Normal-mode grammar: count prefixes, pending
// operators and motions.
//
// The grammar is deliberately small:
//
//	[count][operator][motion]
//	[count][motion]
//	[count]u            (undo needs no motion)
//
// Parse state lives in State. Transitions are plain functions that take a
// State and return the next one, so the whole table can be tested without
// a resolver or a terminal.
package vim
