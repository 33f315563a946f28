// Package quadtree is the broad-phase index over a level's static geometry.
//
// Rectangles are routed by an anchor point, not by their own extent, so each
// rectangle lives in exactly one leaf. A point query descends with the same
// routing and returns that leaf's bucket. The tree is built once while a level
// loads and is read-only afterwards; it does no locking of its own.
package quadtree

import (
	"github.com/automoto/punkpark/shared/geom"
)

const (
	// DefaultLimit is the terminal node size: 2.5 times a 144px character.
	DefaultLimit = 360.0

	// DefaultMaxDepth bounds subdivision when the limit is zero or negative.
	DefaultMaxDepth = 16
)

// Quadrant identifies a node's position relative to its parent.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
	Root
)

func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	case Root:
		return "root"
	default:
		return "unknown"
	}
}

func (q Quadrant) col() int { return int(q) & 1 }
func (q Quadrant) row() int { return int(q) >> 1 }

// node is either a *leaf or an *internal. The variant is chosen from the
// boundary when the node is created and never changes.
type node interface {
	boundary() geom.Rect
}

type leaf struct {
	bounds geom.Rect
	rects  []geom.Rect
}

func (l *leaf) boundary() geom.Rect { return l.bounds }

type internal struct {
	bounds   geom.Rect
	children [4]node // indexed by Quadrant, nil until first insert
}

func (n *internal) boundary() geom.Rect { return n.bounds }

// route picks the child quadrant for (x, y). Points on a midline go to the
// left or top child.
func (n *internal) route(x, y float64) Quadrant {
	midX := n.bounds.X + n.bounds.W/2
	midY := n.bounds.Y + n.bounds.H/2
	switch {
	case x <= midX && y <= midY:
		return TopLeft
	case x <= midX:
		return BottomLeft
	case y <= midY:
		return TopRight
	default:
		return BottomRight
	}
}

// Tree is a quadtree of static rectangles.
type Tree struct {
	root     node
	limit    float64
	maxDepth int
	count    int
}

// Option configures a Tree.
type Option func(*Tree)

// WithLimit sets the size at or below which a node stops subdividing. Both
// the width and the height of a node must be within the limit.
func WithLimit(limit float64) Option {
	return func(t *Tree) {
		t.limit = limit
	}
}

// WithMaxDepth sets the depth at which a node is a leaf regardless of size.
func WithMaxDepth(depth int) Option {
	return func(t *Tree) {
		if depth >= 0 {
			t.maxDepth = depth
		}
	}
}

// New returns an empty tree covering boundary.
func New(boundary geom.Rect, opts ...Option) *Tree {
	t := &Tree{
		limit:    DefaultLimit,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.root = t.newNode(boundary, 0)
	return t
}

func (t *Tree) terminal(b geom.Rect, depth int) bool {
	return depth >= t.maxDepth || (b.W <= t.limit && b.H <= t.limit)
}

func (t *Tree) newNode(b geom.Rect, depth int) node {
	if t.terminal(b, depth) {
		return &leaf{bounds: b}
	}
	return &internal{bounds: b}
}

// Boundary returns the root boundary.
func (t *Tree) Boundary() geom.Rect { return t.root.boundary() }

// Limit returns the terminal node size.
func (t *Tree) Limit() float64 { return t.limit }

// Len returns the number of stored rectangles.
func (t *Tree) Len() int { return t.count }

// Contains reports whether (x, y) is inside the root boundary, i.e. whether
// Insert with that anchor would store anything.
func (t *Tree) Contains(x, y float64) bool {
	return t.root.boundary().ContainsPoint(x, y)
}

// Insert stores r in the leaf that (anchorX, anchorY) routes to, allocating
// nodes along the way. An anchor outside the root boundary is ignored.
func (t *Tree) Insert(anchorX, anchorY float64, r geom.Rect) {
	if !t.Contains(anchorX, anchorY) {
		return
	}

	n, depth := t.root, 0
	for {
		switch v := n.(type) {
		case *leaf:
			v.rects = append(v.rects, r)
			t.count++
			return
		case *internal:
			q := v.route(anchorX, anchorY)
			if v.children[q] == nil {
				v.children[q] = t.newNode(v.bounds.Quarter(q.col(), q.row()), depth+1)
			}
			n = v.children[q]
			depth++
		}
	}
}

// Search returns the bucket that (x, y) routes to. ok is false when the point
// is outside the root or the routed quadrant was never populated.
//
// The result is a candidate set from one bucket, not every rectangle that
// overlaps the point; geometry anchored across a bucket edge is not included.
// The slice is the tree's own storage and must not be modified.
func (t *Tree) Search(x, y float64) (rects []geom.Rect, ok bool) {
	if !t.Contains(x, y) {
		return nil, false
	}

	n := t.root
	for {
		switch v := n.(type) {
		case *leaf:
			if len(v.rects) == 0 {
				return nil, false
			}
			return v.rects, true
		case *internal:
			child := v.children[v.route(x, y)]
			if child == nil {
				return nil, false
			}
			n = child
		}
	}
}

// WalkFunc is called for every allocated node.
type WalkFunc func(boundary geom.Rect, q Quadrant, depth int, isLeaf bool)

// Walk visits allocated nodes in pre-order, children in Quadrant order.
func (t *Tree) Walk(fn WalkFunc) {
	walk(t.root, Root, 0, fn)
}

func walk(n node, q Quadrant, depth int, fn WalkFunc) {
	switch v := n.(type) {
	case *leaf:
		fn(v.bounds, q, depth, true)
	case *internal:
		fn(v.bounds, q, depth, false)
		for i, child := range v.children {
			if child != nil {
				walk(child, Quadrant(i), depth+1, fn)
			}
		}
	}
}

// Stats summarises the allocated shape of a tree.
type Stats struct {
	Nodes    int
	Leaves   int
	Rects    int
	MaxDepth int
}

// Stats walks the tree and counts its nodes.
func (t *Tree) Stats() Stats {
	s := Stats{Rects: t.count}
	t.Walk(func(_ geom.Rect, _ Quadrant, depth int, isLeaf bool) {
		s.Nodes++
		if isLeaf {
			s.Leaves++
		}
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
	})
	return s
}
