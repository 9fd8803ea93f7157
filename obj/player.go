package obj

import (
	"fmt"

	"github.com/milk9111/runjump/common"
	"github.com/milk9111/runjump/component"
	"github.com/milk9111/runjump/prefabs"
)

// maxStepsPerFrame caps catch-up ticks after a long frame.
const maxStepsPerFrame = 5

// Player glues a MovementController to a level: it latches input sampled
// every frame, runs fixed ticks from an accumulator and respawns below the
// kill plane.
type Player struct {
	Controller *component.MovementController
	Latch      component.InputLatch
	Respawns   int

	level *Level
	step  float64
	acc   float64
}

func NewPlayer(spec *prefabs.PlayerSpec, level *Level) (*Player, error) {
	if level == nil {
		return nil, fmt.Errorf("player: nil level")
	}
	cfg, err := spec.MovementConfig()
	if err != nil {
		return nil, err
	}
	ctl, err := component.NewMovementController(cfg, level.World, level.Spawn)
	if err != nil {
		return nil, err
	}
	return &Player{
		Controller: ctl,
		level:      level,
		step:       spec.FixedStep(),
	}, nil
}

// ApplySpec swaps in reloaded tunables and ground probe settings. The motion
// state is kept.
func (p *Player) ApplySpec(spec *prefabs.PlayerSpec) error {
	cfg, err := spec.MovementConfig()
	if err != nil {
		return err
	}
	if err := p.Controller.SetConfig(cfg); err != nil {
		return err
	}
	p.level.World.SetProbe(spec.Probe(), spec.GroundLayers...)
	p.step = spec.FixedStep()
	return nil
}

// Sample reads raw input at frame rate.
func (p *Player) Sample(r component.InputReader) {
	p.Latch.Sample(r)
}

// Update accumulates frameDT and runs as many fixed ticks as fit. It returns
// the number of ticks run.
func (p *Player) Update(frameDT float64) int {
	if frameDT <= 0 {
		return 0
	}
	p.acc += frameDT
	steps := 0
	for p.acc >= p.step && steps < maxStepsPerFrame {
		p.FixedTick()
		p.acc -= p.step
		steps++
	}
	if steps == maxStepsPerFrame {
		p.acc = 0
	}
	return steps
}

// FixedTick runs one controller tick with the latched input.
func (p *Player) FixedTick() common.Vec2 {
	pos := p.Controller.Tick(p.Latch.Consume(), p.step)
	if p.level.OutOfBounds(pos) {
		p.Respawn()
		pos = p.Controller.Position()
	}
	return pos
}

func (p *Player) Respawn() {
	p.Controller.Reset(p.level.Spawn)
	p.Respawns++
}

// Step is the fixed tick length in seconds.
func (p *Player) Step() float64 {
	return p.step
}

// Bounds is the collider box around the current position.
func (p *Player) Bounds() common.Rect {
	cfg := p.Controller.Config()
	pos := p.Controller.Position()
	return common.Rect{
		X:      pos.X - cfg.HalfWidth,
		Y:      pos.Y - cfg.HalfHeight,
		Width:  cfg.HalfWidth * 2,
		Height: cfg.HalfHeight * 2,
	}
}

func (p *Player) Level() *Level {
	return p.level
}
