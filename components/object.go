package components

import (
	"github.com/automoto/punkpark/shared/geom"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's collision body. The resolv object lives in the
// level's character space so bodies can be checked against each other;
// static geometry is never added to that space.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the body as a plain rectangle.
func (o ObjectData) Rect() geom.Rect {
	return geom.NewRect(o.X, o.Y, o.W, o.H)
}

var Object = donburi.NewComponentType[ObjectData]()
