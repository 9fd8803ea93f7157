package component

import "github.com/milk9111/runjump/common"

// Surface is the ground under the character.
type Surface struct {
	// TopY is the world Y of the top of the contacted collider.
	TopY float64
}

// GroundProbe answers whether a character whose center is at pos is standing
// on ground. Implementations must not mutate anything.
type GroundProbe interface {
	Probe(pos common.Vec2, halfHeight float64) (Surface, bool)
}

// GroundProbeFunc adapts a function to GroundProbe.
type GroundProbeFunc func(pos common.Vec2, halfHeight float64) (Surface, bool)

func (f GroundProbeFunc) Probe(pos common.Vec2, halfHeight float64) (Surface, bool) {
	return f(pos, halfHeight)
}

// PlaneProbe is an infinite flat floor whose top sits at TopY. Anything below
// the top counts as inside the floor.
type PlaneProbe struct {
	TopY     float64
	Distance float64
}

func (p PlaneProbe) Probe(pos common.Vec2, halfHeight float64) (Surface, bool) {
	dist := p.Distance
	if dist <= 0 {
		dist = DefaultProbeDistance
	}
	base := pos.Y - halfHeight
	if base-dist > p.TopY {
		return Surface{}, false
	}
	return Surface{TopY: p.TopY}, true
}

// NoGround never reports contact.
var NoGround GroundProbe = GroundProbeFunc(func(common.Vec2, float64) (Surface, bool) {
	return Surface{}, false
})
