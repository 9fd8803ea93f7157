package obj

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/runjump/common"
	"github.com/milk9111/runjump/component"
)

const allCategories = ^uint(0)

// Platform is the user data attached to every static shape in the space.
type Platform struct {
	Bounds common.Rect
	Layer  string
}

// CollisionWorld owns a chipmunk space with the level's static platforms and
// answers downward ground probes against it. Y points up.
type CollisionWorld struct {
	space *cp.Space

	layers        map[string]uint
	groundMask    uint
	probeDistance float64
}

// NewCollisionWorld builds an empty space. groundLayers names the layers the
// ground probe may hit; layers are assigned category bits as they appear.
func NewCollisionWorld(probeDistance float64, groundLayers ...string) *CollisionWorld {
	cw := &CollisionWorld{
		space:  cp.NewSpace(),
		layers: make(map[string]uint),
	}
	cw.SetProbe(probeDistance, groundLayers...)
	return cw
}

// SetProbe replaces the probe reach and the layers it may hit. Platforms
// already in the space keep their layers.
func (cw *CollisionWorld) SetProbe(probeDistance float64, groundLayers ...string) {
	if probeDistance <= 0 {
		probeDistance = component.DefaultProbeDistance
	}
	cw.probeDistance = probeDistance
	cw.groundMask = 0
	for _, name := range groundLayers {
		bit, err := cw.layerBit(name)
		if err != nil {
			continue
		}
		cw.groundMask |= bit
	}
}

func (cw *CollisionWorld) layerBit(name string) (uint, error) {
	if bit, ok := cw.layers[name]; ok {
		return bit, nil
	}
	if len(cw.layers) >= 32 {
		return 0, fmt.Errorf("collision: too many layers, cannot add %q", name)
	}
	bit := uint(1) << uint(len(cw.layers))
	cw.layers[name] = bit
	return bit, nil
}

// AddPlatform inserts a static box on the given layer.
func (cw *CollisionWorld) AddPlatform(bounds common.Rect, layer string) (*Platform, error) {
	if cw == nil || cw.space == nil {
		return nil, fmt.Errorf("collision: nil world")
	}
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return nil, fmt.Errorf("collision: platform %q has empty bounds %+v", layer, bounds)
	}
	bit, err := cw.layerBit(layer)
	if err != nil {
		return nil, err
	}

	p := &Platform{Bounds: bounds, Layer: layer}
	bb := cp.BB{L: bounds.X, B: bounds.Y, R: bounds.X + bounds.Width, T: bounds.Top()}
	shape := cp.NewBox2(cw.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetFilter(cp.ShapeFilter{Categories: bit, Mask: allCategories})
	shape.UserData = p
	cw.space.AddShape(shape)
	return p, nil
}

// Probe casts from the character's center down to probeDistance below its
// base. Starting at the center keeps contact when a large gravity step sank
// the base into the platform.
func (cw *CollisionWorld) Probe(pos common.Vec2, halfHeight float64) (component.Surface, bool) {
	p, ok := cw.GroundAt(pos, halfHeight)
	if !ok {
		return component.Surface{}, false
	}
	return component.Surface{TopY: p.Bounds.Top()}, true
}

// GroundAt is Probe returning the platform that was hit.
func (cw *CollisionWorld) GroundAt(pos common.Vec2, halfHeight float64) (*Platform, bool) {
	if cw == nil || cw.space == nil || cw.groundMask == 0 {
		return nil, false
	}
	start := cp.Vector{X: pos.X, Y: pos.Y}
	end := cp.Vector{X: pos.X, Y: pos.Y - halfHeight - cw.probeDistance}
	filter := cp.ShapeFilter{Categories: allCategories, Mask: cw.groundMask}

	info := cw.space.SegmentQueryFirst(start, end, 0, filter)
	if info.Shape == nil {
		return nil, false
	}
	p, ok := info.Shape.UserData.(*Platform)
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}

// ProbeDistance is how far below the base the probe reaches.
func (cw *CollisionWorld) ProbeDistance() float64 {
	if cw == nil {
		return 0
	}
	return cw.probeDistance
}

// IsGroundLayer reports whether the probe can hit shapes on layer.
func (cw *CollisionWorld) IsGroundLayer(layer string) bool {
	if cw == nil {
		return false
	}
	bit, ok := cw.layers[layer]
	return ok && cw.groundMask&bit != 0
}
