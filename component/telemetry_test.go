package component

import (
	"strings"
	"testing"

	"github.com/milk9111/runjump/common"
	"golang.org/x/image/colornames"
)

func TestSignColor(t *testing.T) {
	if SignColor(-1) != colornames.Red {
		t.Fatalf("negative should be red")
	}
	if SignColor(2) != colornames.Green {
		t.Fatalf("positive should be green")
	}
	if SignColor(0) != colornames.Yellow {
		t.Fatalf("zero should be yellow")
	}
}

func TestDebugPanel(t *testing.T) {
	tel := Telemetry{
		MoveX:       -1,
		Position:    common.Vec2{X: 1, Y: 2},
		JumpTargetY: 4.5,
		Ascending:   true,
		Dash:        DashLeft,
	}
	lines := DebugPanel(tel)
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines, got %d", len(lines))
	}
	if lines[0].Color != colornames.Red {
		t.Fatalf("negative input should be red")
	}
	if lines[3].Color != colornames.Green {
		t.Fatalf("ascending flag should be green")
	}
	if lines[5].Color != colornames.Green {
		t.Fatalf("active dash should be green")
	}

	text := PanelText(lines)
	for _, want := range []string{
		"inputMovement: -1.000",
		"position: (1.000, 2.000)",
		"jumpEnd: 4.500",
		"gainingHeight: true",
		"dash: dashing left",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("panel text missing %q:\n%s", want, text)
		}
	}
	if strings.Count(text, "\n") != len(lines)-1 {
		t.Fatalf("expected one line per entry:\n%s", text)
	}
}

func TestTelemetryTracksTicks(t *testing.T) {
	c := newTestController(t, testConfig(), PlaneProbe{TopY: 0}, groundSpawn)
	c.Tick(Input{MoveX: 1}, 0.1)
	c.Tick(Input{MoveX: 1}, 0.1)
	tel := c.Telemetry()
	if tel.Tick != 2 || tel.MoveX != 1 || !tel.Grounded {
		t.Fatalf("unexpected telemetry: %+v", tel)
	}
	if !near(tel.HorizontalSpeed, 5*0.4) {
		t.Fatalf("expected speed 2, got %v", tel.HorizontalSpeed)
	}
	if tel.VerticalSpeed != 0 {
		t.Fatalf("expected no vertical speed while grounded, got %v", tel.VerticalSpeed)
	}
}
