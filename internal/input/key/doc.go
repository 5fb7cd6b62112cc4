// Package key defines keyboard events and the key specification syntax
// used by keymaps.
//
// A key specification names one key press, optionally with modifiers:
//
//   - Single characters: "a", "A", ":", "1"
//   - Key names: "Enter", "Escape", "Backspace", "Left"
//   - Modifier style: "Ctrl+S", "Alt+Left"
//   - Vim style: "<C-s>", "<CR>", "<Esc>", "<S-Up>"
package key
