package obj

import (
	"fmt"
	"image/color"

	"github.com/milk9111/runjump/common"
	"github.com/milk9111/runjump/prefabs"
	"golang.org/x/image/colornames"
)

// Level is a set of static platforms plus the collision world built from
// them.
type Level struct {
	Name          string
	Spawn         common.Vec2
	PixelsPerUnit float64
	KillY         float64
	Background    color.Color

	Platforms []*Platform
	World     *CollisionWorld

	layerColors map[string]color.Color
}

// NewLevel builds a level from its spec. probeDistance and groundLayers
// configure the player's ground probe.
func NewLevel(spec *prefabs.LevelSpec, probeDistance float64, groundLayers []string) (*Level, error) {
	if spec == nil {
		return nil, fmt.Errorf("level: nil spec")
	}

	ppu := spec.PixelsPerUnit
	if ppu <= 0 {
		ppu = 32
	}
	lvl := &Level{
		Name:          spec.Name,
		Spawn:         common.Vec2{X: spec.Spawn.X, Y: spec.Spawn.Y},
		PixelsPerUnit: ppu,
		KillY:         spec.KillY,
		Background:    spec.Background.ColorOr(colornames.Black),
		World:         NewCollisionWorld(probeDistance, groundLayers...),
		layerColors:   make(map[string]color.Color, len(spec.Layers)),
	}

	for _, layer := range spec.Layers {
		lvl.layerColors[layer.Name] = layer.Color.ColorOr(colornames.Gray)
	}

	for i, ps := range spec.Platforms {
		bounds := common.Rect{X: ps.X, Y: ps.Y, Width: ps.Width, Height: ps.Height}
		p, err := lvl.World.AddPlatform(bounds, ps.Layer)
		if err != nil {
			return nil, fmt.Errorf("level %s: platform %d: %w", spec.Name, i, err)
		}
		lvl.Platforms = append(lvl.Platforms, p)
	}
	return lvl, nil
}

// LoadLevel reads level.yaml through prefabs and builds it.
func LoadLevel(probeDistance float64, groundLayers []string) (*Level, error) {
	spec, err := prefabs.LoadLevelSpec()
	if err != nil {
		return nil, err
	}
	return NewLevel(spec, probeDistance, groundLayers)
}

// LayerColor is the draw color of a layer.
func (l *Level) LayerColor(layer string) color.Color {
	if c, ok := l.layerColors[layer]; ok {
		return c
	}
	return colornames.Gray
}

// OutOfBounds reports whether pos fell below the kill plane.
func (l *Level) OutOfBounds(pos common.Vec2) bool {
	if l == nil || l.KillY == 0 {
		return false
	}
	return pos.Y < l.KillY
}
