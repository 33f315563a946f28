package leveldata

import (
	"fmt"

	"github.com/automoto/punkpark/shared/geom"
	"github.com/automoto/punkpark/shared/quadtree"
)

// Reasons a solid rect is rejected by BuildIndex.
const (
	ReasonNonPositive = "non-positive extent"
	ReasonOutOfBounds = "anchor outside level bounds"
)

// Rejected is a solid rect BuildIndex refused to insert.
type Rejected struct {
	Rect   geom.Rect
	Reason string
}

func (r Rejected) String() string {
	return fmt.Sprintf("%s: (%g,%g %gx%g)", r.Reason, r.Rect.X, r.Rect.Y, r.Rect.W, r.Rect.H)
}

// BuildIndex inserts every solid rect into a quadtree covering the level,
// anchored at the rect's origin. The tree itself drops out of bounds anchors
// without a word, so they are checked here first and returned together with
// rects that have no area.
func BuildIndex(data *CollisionData, opts ...quadtree.Option) (*quadtree.Tree, []Rejected) {
	tree := quadtree.New(data.Bounds(), opts...)

	var rejected []Rejected
	for _, r := range data.SolidRects {
		switch {
		case !r.Positive():
			rejected = append(rejected, Rejected{Rect: r, Reason: ReasonNonPositive})
		case !tree.Contains(r.X, r.Y):
			rejected = append(rejected, Rejected{Rect: r, Reason: ReasonOutOfBounds})
		default:
			tree.Insert(r.X, r.Y, r)
		}
	}
	return tree, rejected
}
