package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/seqterm/internal/renderer/core"
)

// DefaultRatio is the ratio every split is created with.
const DefaultRatio = 0.5

var (
	ErrInvalidRatio = errors.New("layout: split ratio must be strictly between 0 and 1")
	ErrNotLeaf      = errors.New("layout: node is not a leaf")
	ErrNoNode       = errors.New("layout: no such node")
)

// WindowID names a window. IDs are allocated by the window registry.
type WindowID uint64

// NodeID indexes a node in a tree's arena.
type NodeID int

// Kind tells leaves from splits.
type Kind uint8

const (
	KindLeaf Kind = iota
	KindSplit
)

// Node is one arena slot. Window is set for leaves; Direction, Ratio,
// First and Second are set for splits.
type Node struct {
	Kind      Kind
	Window    WindowID
	Direction Direction
	Ratio     float64
	First     NodeID
	Second    NodeID
}

// Tree is a layout tree. It always has exactly one root.
type Tree struct {
	nodes []Node
	root  NodeID
}

// NewTree creates a tree holding a single leaf for win.
func NewTree(win WindowID) *Tree {
	return &Tree{nodes: []Node{{Kind: KindLeaf, Window: win}}}
}

// Root returns the root node id.
func (t *Tree) Root() NodeID {
	return t.root
}

// Node returns the node stored at id.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return Node{}, false
	}
	return t.nodes[id], true
}

// Find searches depth-first, first child first, for the leaf naming win.
func (t *Tree) Find(win WindowID) (NodeID, bool) {
	stack := []NodeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[id]
		if n.Kind == KindLeaf {
			if n.Window == win {
				return id, true
			}
			continue
		}
		stack = append(stack, n.Second, n.First)
	}
	return 0, false
}

// Split replaces the leaf at id, in place, with a split whose first child
// is the old leaf and whose second child is a new leaf for win.
func (t *Tree) Split(id NodeID, dir Direction, ratio float64, win WindowID) error {
	if !(ratio > 0 && ratio < 1) {
		return fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}
	n, ok := t.Node(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoNode, id)
	}
	if n.Kind != KindLeaf {
		return fmt.Errorf("%w: %d", ErrNotLeaf, id)
	}

	first := t.add(Node{Kind: KindLeaf, Window: n.Window})
	second := t.add(Node{Kind: KindLeaf, Window: win})
	t.nodes[id] = Node{
		Kind:      KindSplit,
		Direction: dir,
		Ratio:     ratio,
		First:     first,
		Second:    second,
	}
	return nil
}

func (t *Tree) add(n Node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// Leaves returns the window ids of all leaves in depth-first order.
func (t *Tree) Leaves() []WindowID {
	var out []WindowID
	t.walk(func(id NodeID, n Node) {
		if n.Kind == KindLeaf {
			out = append(out, n.Window)
		}
	})
	return out
}

// walk visits every reachable node in pre-order, first child first.
func (t *Tree) walk(fn func(NodeID, Node)) {
	stack := []NodeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[id]
		fn(id, n)
		if n.Kind == KindSplit {
			stack = append(stack, n.Second, n.First)
		}
	}
}

// Walk partitions area top-down and calls fn for each leaf with the
// rectangle it was given, first child first.
func (t *Tree) Walk(area core.Rect, fn func(win WindowID, rect core.Rect)) {
	type frame struct {
		id   NodeID
		area core.Rect
	}
	stack := []frame{{t.root, area}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[f.id]
		if n.Kind == KindLeaf {
			fn(n.Window, f.area)
			continue
		}
		a, b := Partition(f.area, n.Direction, n.Ratio)
		stack = append(stack, frame{n.Second, b}, frame{n.First, a})
	}
}

// Clone returns a deep copy of t.
func (t *Tree) Clone() *Tree {
	nodes := make([]Node, len(t.nodes))
	copy(nodes, t.nodes)
	return &Tree{nodes: nodes, root: t.root}
}

// Equal reports whether t and o have identical arenas and roots.
func (t *Tree) Equal(o *Tree) bool {
	if t.root != o.root || len(t.nodes) != len(o.nodes) {
		return false
	}
	for i := range t.nodes {
		if t.nodes[i] != o.nodes[i] {
			return false
		}
	}
	return true
}

// String renders the tree structure, for example "h(0.50 0 v(0.50 1 2))".
func (t *Tree) String() string {
	var sb strings.Builder
	t.format(&sb, t.root)
	return sb.String()
}

func (t *Tree) format(sb *strings.Builder, id NodeID) {
	n := t.nodes[id]
	if n.Kind == KindLeaf {
		sb.WriteString(strconv.FormatUint(uint64(n.Window), 10))
		return
	}
	sb.WriteString(n.Direction.String()[:1])
	sb.WriteString("(")
	sb.WriteString(strconv.FormatFloat(n.Ratio, 'f', 2, 64))
	sb.WriteString(" ")
	t.format(sb, n.First)
	sb.WriteString(" ")
	t.format(sb, n.Second)
	sb.WriteString(")")
}
