// Package script evaluates the init.lua configuration script.
//
// The script runs in a gopher-lua state with only the base, table, string
// and math libraries, and sees four functions:
//
//	set(path, value)   -- set an option, e.g. set("ui.grid.rows", 16)
//	get(path)          -- read an option
//	bind(key, name)    -- bind a key spec to a named command
//	unbind(key)        -- remove a binding
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultTimeout bounds how long a script may run.
const DefaultTimeout = 2 * time.Second

// Target receives the script's settings. *config.Config implements it.
type Target interface {
	Set(path string, value any) error
	Get(path string) (any, error)
	Bind(spec, name string)
	Unbind(spec string)
}

// Error is a failure while running a script.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("script %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Option configures evaluation.
type Option func(*options)

type options struct {
	timeout time.Duration
	output  io.Writer
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithOutput sends print output to w. By default it is discarded, since
// the terminal belongs to the UI.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// EvalFile runs the script at path against t.
func EvalFile(ctx context.Context, path string, t Target, opts ...Option) error {
	return eval(ctx, path, t, opts, func(L *lua.LState) error {
		return L.DoFile(path)
	})
}

// EvalString runs code against t. name identifies the code in errors.
func EvalString(ctx context.Context, name, code string, t Target, opts ...Option) error {
	return eval(ctx, name, t, opts, func(L *lua.LState) error {
		return L.DoString(code)
	})
}

func eval(ctx context.Context, name string, t Target, opts []Option, run func(*lua.LState) error) (err error) {
	o := options{timeout: DefaultTimeout, output: io.Discard}
	for _, opt := range opts {
		opt(&o)
	}

	L := newState(t, o.output)
	defer L.Close()

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	L.SetContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			err = &Error{Path: name, Err: fmt.Errorf("lua panic: %v", r)}
		}
	}()
	if err := run(L); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(ctxErr, err)
		}
		return &Error{Path: name, Err: err}
	}
	return nil
}

func newState(t Target, out io.Writer) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		for i := 1; i <= n; i++ {
			if i > 1 {
				fmt.Fprint(out, "\t")
			}
			fmt.Fprint(out, L.ToStringMeta(L.Get(i)).String())
		}
		fmt.Fprintln(out)
		return 0
	}))

	L.SetGlobal("set", L.NewFunction(func(L *lua.LState) int {
		path := L.CheckString(1)
		value, ok := fromLua(L.CheckAny(2))
		if !ok {
			L.ArgError(2, "expected string, number or boolean")
		}
		if err := t.Set(path, value); err != nil {
			L.RaiseError("set(%q): %v", path, err)
		}
		return 0
	}))

	L.SetGlobal("get", L.NewFunction(func(L *lua.LState) int {
		path := L.CheckString(1)
		value, err := t.Get(path)
		if err != nil {
			L.RaiseError("get(%q): %v", path, err)
		}
		L.Push(toLua(value))
		return 1
	}))

	L.SetGlobal("bind", L.NewFunction(func(L *lua.LState) int {
		t.Bind(L.CheckString(1), L.CheckString(2))
		return 0
	}))

	L.SetGlobal("unbind", L.NewFunction(func(L *lua.LState) int {
		t.Unbind(L.CheckString(1))
		return 0
	}))

	return L
}

func fromLua(v lua.LValue) (any, bool) {
	switch v := v.(type) {
	case lua.LString:
		return string(v), true
	case lua.LNumber:
		return float64(v), true
	case lua.LBool:
		return bool(v), true
	}
	return nil, false
}

func toLua(v any) lua.LValue {
	switch v := v.(type) {
	case string:
		return lua.LString(v)
	case bool:
		return lua.LBool(v)
	case int:
		return lua.LNumber(v)
	case float64:
		return lua.LNumber(v)
	}
	return lua.LNil
}
