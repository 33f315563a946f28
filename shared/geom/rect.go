// Package geom holds the axis-aligned rectangle shared by the spatial index,
// the collision classifier and the level loader.
//
// W and H are always extents measured from X and Y. The far edges of a Rect
// are X+W and Y+H; no caller treats W or H as an absolute coordinate.
package geom

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
// Y grows downward, matching screen and Tiled coordinates.
type Rect struct {
	X, Y, W, H float64
}

// NewRect returns a Rect with the given origin and extent.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the far horizontal edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the far vertical edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the centre point.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// ContainsPoint reports whether (x, y) lies inside r. Edges are inclusive.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Positive reports whether both extents are greater than zero.
func (r Rect) Positive() bool {
	return r.W > 0 && r.H > 0
}

// Quarter returns one quarter of r. col and row are 0 or 1 and select the
// left/right and top/bottom half respectively.
func (r Rect) Quarter(col, row int) Rect {
	w, h := r.W/2, r.H/2
	return Rect{
		X: r.X + float64(col)*w,
		Y: r.Y + float64(row)*h,
		W: w,
		H: h,
	}
}
