package obj

import (
	"testing"

	"github.com/milk9111/runjump/common"
	"github.com/milk9111/runjump/prefabs"
)

type heldJump struct {
	edge bool
}

func (h *heldJump) DirectionalInput() float64 { return 0 }
func (h *heldJump) JumpHeld() bool            { return true }
func (h *heldJump) JumpEdge() bool            { return h.edge }
func (h *heldJump) DashEdge() bool            { return false }

func newTestPlayer(t *testing.T) *Player {
	t.Helper()
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	lvl, err := LoadLevel(spec.Probe(), spec.GroundLayers)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	p, err := NewPlayer(spec, lvl)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return p
}

func TestPlayerSettlesOnFloor(t *testing.T) {
	p := newTestPlayer(t)
	ticks := 0
	for i := 0; i < 120; i++ {
		ticks += p.Update(1.0 / 60)
	}
	if ticks < 95 || ticks > 100 {
		t.Fatalf("expected about 100 fixed ticks in 2s, got %d", ticks)
	}
	if y := p.Controller.Position().Y; y != 0.5 {
		t.Fatalf("expected to stand on the floor at 0.5, got %v", y)
	}
	if !p.Controller.Grounded() {
		t.Fatalf("expected grounded")
	}
	if b := p.Bounds(); b.Y != 0 || b.Height != 1 {
		t.Fatalf("unexpected bounds %+v", b)
	}
}

func TestPlayerLatchedJump(t *testing.T) {
	p := newTestPlayer(t)
	for i := 0; i < 20; i++ {
		p.FixedTick()
	}
	r := &heldJump{edge: true}
	p.Sample(r)
	r.edge = false
	p.Sample(r)
	p.FixedTick()
	if !p.Controller.State().Ascending {
		t.Fatalf("expected latched jump to fire")
	}
	origin := p.Controller.State().JumpOriginY
	p.FixedTick()
	if p.Controller.State().JumpOriginY != origin {
		t.Fatalf("jump fired twice")
	}
}

func TestPlayerRespawnsBelowKillPlane(t *testing.T) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	lvl, err := NewLevel(&prefabs.LevelSpec{Name: "void", Spawn: prefabs.PointSpec{Y: 0}, KillY: -2}, spec.Probe(), spec.GroundLayers)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	p, err := NewPlayer(spec, lvl)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	for i := 0; i < 100; i++ {
		p.FixedTick()
	}
	if p.Respawns == 0 {
		t.Fatalf("expected at least one respawn")
	}
	if y := p.Controller.Position().Y; y < lvl.KillY {
		t.Fatalf("player left below kill plane: %v", y)
	}
}

func TestPlayerApplySpec(t *testing.T) {
	p := newTestPlayer(t)
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	spec.RunSpeedMax = 9
	spec.TickRate = 100
	if err := p.ApplySpec(spec); err != nil {
		t.Fatalf("ApplySpec: %v", err)
	}
	if p.Controller.Config().RunSpeedMax != 9 || p.Step() != 0.01 {
		t.Fatalf("spec not applied")
	}

	if p.Level().World.ProbeDistance() != spec.Probe() {
		t.Fatalf("probe distance not applied")
	}

	ledge := common.Vec2{X: 6, Y: 3}
	if _, ok := p.Level().World.Probe(ledge, 0.5); !ok {
		t.Fatalf("expected the ledge to be walkable before reload")
	}
	spec.GroundLayers = []string{"ground"}
	spec.ProbeDistance = 0.25
	if err := p.ApplySpec(spec); err != nil {
		t.Fatalf("ApplySpec: %v", err)
	}
	if _, ok := p.Level().World.Probe(ledge, 0.5); ok {
		t.Fatalf("ledge must stop being ground once its layer is dropped")
	}
	if p.Level().World.ProbeDistance() != 0.25 {
		t.Fatalf("expected probe distance 0.25, got %v", p.Level().World.ProbeDistance())
	}

	spec.JumpSpeed = 0
	if err := p.ApplySpec(spec); err == nil {
		t.Fatalf("expected invalid spec to be rejected")
	}
	if p.Controller.Config().JumpSpeed == 0 {
		t.Fatalf("rejected spec must not be applied")
	}
}

func TestLevelFromEmbeddedSpec(t *testing.T) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	lvl, err := LoadLevel(spec.Probe(), spec.GroundLayers)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if len(lvl.Platforms) != 7 {
		t.Fatalf("expected 7 platforms, got %d", len(lvl.Platforms))
	}
	if lvl.World.IsGroundLayer("decor") {
		t.Fatalf("decor must not be walkable")
	}
	if lvl.OutOfBounds(lvl.Spawn) || !lvl.OutOfBounds(common.Vec2{Y: lvl.KillY - 1}) {
		t.Fatalf("kill plane at %v misbehaves", lvl.KillY)
	}
	if s, ok := lvl.World.Probe(common.Vec2{X: 6, Y: 3}, 0.5); !ok || s.TopY != 2.5 {
		t.Fatalf("expected ledge top 2.5, got %v %v", s.TopY, ok)
	}
	if _, ok := lvl.World.Probe(common.Vec2{X: 17, Y: 2.5}, 0.5); ok {
		t.Fatalf("decor over the gap must not hold the player")
	}
	if lvl.LayerColor("missing") == nil {
		t.Fatalf("missing layer needs a fallback color")
	}
}
