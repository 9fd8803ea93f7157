package obj

import (
	"testing"

	"github.com/milk9111/runjump/common"
	"github.com/milk9111/runjump/component"
)

func newTestWorld(t *testing.T) *CollisionWorld {
	t.Helper()
	cw := NewCollisionWorld(0.1, "ground", "ledge")
	platforms := []struct {
		bounds common.Rect
		layer  string
	}{
		{common.Rect{X: -5, Y: -1, Width: 10, Height: 1}, "ground"},
		{common.Rect{X: 2, Y: 2, Width: 2, Height: 0.5}, "ledge"},
		{common.Rect{X: 10, Y: -1, Width: 2, Height: 1}, "decor"},
	}
	for _, p := range platforms {
		if _, err := cw.AddPlatform(p.bounds, p.layer); err != nil {
			t.Fatalf("AddPlatform: %v", err)
		}
	}
	return cw
}

func TestCollisionWorldProbe(t *testing.T) {
	cw := newTestWorld(t)
	cases := []struct {
		name string
		pos  common.Vec2
		hit  bool
		top  float64
	}{
		{"standing", common.Vec2{X: 0, Y: 0.5}, true, 0},
		{"within_probe", common.Vec2{X: 0, Y: 0.55}, true, 0},
		{"above_probe", common.Vec2{X: 0, Y: 0.65}, false, 0},
		{"sunk_into_floor", common.Vec2{X: 0, Y: 0.2}, true, 0},
		{"on_ledge", common.Vec2{X: 3, Y: 3}, true, 2.5},
		{"decor_is_not_ground", common.Vec2{X: 11, Y: 0.5}, false, 0},
		{"off_the_edge", common.Vec2{X: 7, Y: 0.5}, false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, ok := cw.Probe(c.pos, 0.5)
			if ok != c.hit {
				t.Fatalf("hit=%v, want %v", ok, c.hit)
			}
			if ok && s.TopY != c.top {
				t.Fatalf("top=%v, want %v", s.TopY, c.top)
			}
		})
	}
}

func TestCollisionWorldProbeIsPure(t *testing.T) {
	cw := newTestWorld(t)
	pos := common.Vec2{X: 0, Y: 0.5}
	for i := 0; i < 3; i++ {
		if _, ok := cw.Probe(pos, 0.5); !ok {
			t.Fatalf("probe %d missed", i)
		}
	}
}

func TestCollisionWorldLayers(t *testing.T) {
	cw := newTestWorld(t)
	if !cw.IsGroundLayer("ground") || !cw.IsGroundLayer("ledge") {
		t.Fatalf("expected ground and ledge to be ground layers")
	}
	if cw.IsGroundLayer("decor") || cw.IsGroundLayer("missing") {
		t.Fatalf("decor must not be ground")
	}
	if _, err := cw.AddPlatform(common.Rect{Width: 0, Height: 1}, "ground"); err == nil {
		t.Fatalf("expected error for empty platform")
	}
}

func TestCollisionWorldWithoutGroundLayers(t *testing.T) {
	cw := NewCollisionWorld(0.1)
	if _, err := cw.AddPlatform(common.Rect{X: -1, Y: -1, Width: 2, Height: 1}, "ground"); err != nil {
		t.Fatalf("AddPlatform: %v", err)
	}
	if _, ok := cw.Probe(common.Vec2{Y: 0.5}, 0.5); ok {
		t.Fatalf("no ground layers configured, probe must miss")
	}
}

func TestControllerLandsOnCollisionWorld(t *testing.T) {
	cw := newTestWorld(t)
	cfg := component.Config{
		GravityStrength: 10,
		RunAcceleration: 2,
		RunSpeedMax:     5,
		JumpHeight:      2,
		JumpSpeed:       1,
		MinJumpLerp:     0.5,
		DashSpeed:       10,
		DashDuration:    0.2,
		HalfWidth:       0.25,
		HalfHeight:      0.5,
	}
	ctl, err := component.NewMovementController(cfg, cw, common.Vec2{X: 0, Y: 3.05})
	if err != nil {
		t.Fatalf("NewMovementController: %v", err)
	}
	for i := 0; i < 10; i++ {
		ctl.Tick(component.Input{}, 0.1)
	}
	if ctl.Position().Y != 0.5 {
		t.Fatalf("expected to rest on the floor at 0.5, got %v", ctl.Position().Y)
	}
	if !ctl.Grounded() {
		t.Fatalf("expected grounded")
	}
}
