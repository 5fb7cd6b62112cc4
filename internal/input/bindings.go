package input

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/seqterm/internal/command"
	"github.com/dshills/seqterm/internal/input/key"
)

var (
	// ErrPlainRune is returned when binding an unmodified character key.
	ErrPlainRune = errors.New("plain character keys cannot be bound")
	// ErrReservedKey is returned when binding Escape.
	ErrReservedKey = errors.New("key is reserved")
)

// Binding is one entry of a keymap.
type Binding struct {
	Key  key.Event
	Name string
	Cmd  command.Resolved
}

// Bindings maps key presses to commands in Normal mode.
type Bindings struct {
	byKey map[string]Binding
}

// NewBindings returns an empty keymap.
func NewBindings() *Bindings {
	return &Bindings{byKey: make(map[string]Binding)}
}

// DefaultKeymap is the built-in keymap, as key spec to binding name.
func DefaultKeymap() map[string]string {
	return map[string]string{
		"<C-s>":   "split.horizontal",
		"<C-v>":   "split.vertical",
		"<Left>":  "cursor.left",
		"<Right>": "cursor.right",
		"<Up>":    "cursor.up",
		"<Down>":  "cursor.down",
		"<CR>":    "confirm",
	}
}

// DefaultBindings returns the built-in keymap.
func DefaultBindings() *Bindings {
	b, err := BindingsFromMap(DefaultKeymap())
	if err != nil {
		panic("input: default keymap: " + err.Error())
	}
	return b
}

// BindingsFromMap builds a keymap from key spec to binding name. An empty
// name leaves the key unbound. All errors are reported together.
func BindingsFromMap(m map[string]string) (*Bindings, error) {
	b := NewBindings()
	specs := make([]string, 0, len(m))
	for spec := range m {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	var errs []error
	for _, spec := range specs {
		if m[spec] == "" {
			continue
		}
		if err := b.Bind(spec, m[spec]); err != nil {
			errs = append(errs, err)
		}
	}
	return b, errors.Join(errs...)
}

// Bind maps the key spec to the named command, replacing any existing
// binding for that key.
func (b *Bindings) Bind(spec, name string) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("bind %q: %w", spec, err)
	}
	if ev.IsRune() && !ev.IsModified() {
		return fmt.Errorf("bind %q: %w", spec, ErrPlainRune)
	}
	if ev.Plain(key.KeyEscape) {
		return fmt.Errorf("bind %q: %w", spec, ErrReservedKey)
	}
	cmd, err := command.Named(name)
	if err != nil {
		return fmt.Errorf("bind %q: %w", spec, err)
	}
	b.byKey[ev.String()] = Binding{Key: ev, Name: name, Cmd: cmd}
	return nil
}

// Unbind removes the binding for spec, if any.
func (b *Bindings) Unbind(spec string) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("unbind %q: %w", spec, err)
	}
	delete(b.byKey, ev.String())
	return nil
}

// Lookup returns the command bound to ev.
func (b *Bindings) Lookup(ev key.Event) (command.Resolved, bool) {
	if b == nil {
		return nil, false
	}
	binding, ok := b.byKey[ev.String()]
	return binding.Cmd, ok
}

// List returns all bindings sorted by key.
func (b *Bindings) List() []Binding {
	out := make([]Binding, 0, len(b.byKey))
	for _, binding := range b.byKey {
		out = append(out, binding)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key.String() < out[j].Key.String()
	})
	return out
}

// Len returns the number of bindings.
func (b *Bindings) Len() int {
	return len(b.byKey)
}
