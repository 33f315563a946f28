package collision

import (
	"math"

	"github.com/automoto/punkpark/shared/geom"
)

// RectCollision reports whether body a overlaps obstacle b and, if so, which
// face of b it hit. Touching edges count as overlap.
//
// The side comes from comparing the centre offset against the combined half
// extents. Exact diagonals resolve as follows: a above-left or above-right of
// b is Top, below-left is Left, below-right is Right, and coincident centres
// are Top.
//
// Zero extents are classified like any other rectangle. Negative extents
// that make the combined half width or height negative never overlap.
func RectCollision(a, b geom.Rect) (Side, bool) {
	ax, ay := a.Center()
	bx, by := b.Center()
	dx := ax - bx
	dy := ay - by
	halfW := (a.W + b.W) / 2
	halfH := (a.H + b.H) / 2

	if math.Abs(dx) > halfW || math.Abs(dy) > halfH {
		return 0, false
	}

	crossW := halfW * dy
	crossH := halfH * dx

	if crossW > crossH {
		if crossW > -crossH {
			return Bottom, true
		}
		return Left, true
	}
	if crossW > -crossH {
		return Right, true
	}
	return Top, true
}
