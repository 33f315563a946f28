package components

import (
	"github.com/automoto/punkpark/shared/collision"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// ContactSet records which sides of static geometry a body touched during
// the last collision pass.
type ContactSet [4]bool

// Has reports whether side s was touched.
func (c ContactSet) Has(s collision.Side) bool {
	return c[s]
}

type PhysicsData struct {
	SpeedX      float64
	SpeedY      float64
	Gravity     float64
	Friction    float64
	AirFriction float64
	MaxSpeed    float64

	OnGround bool
	Falling  bool
	Contacts ContactSet
}

var Physics = donburi.NewComponentType[PhysicsData]()
