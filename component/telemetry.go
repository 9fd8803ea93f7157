package component

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/milk9111/runjump/common"
	"golang.org/x/image/colornames"
)

// Telemetry is the read-only view of a controller for overlays and logs.
type Telemetry struct {
	Tick            int
	MoveX           float64
	Position        common.Vec2
	JumpTargetY     float64
	Ascending       bool
	Dash            DashState
	HorizontalSpeed float64
	VerticalSpeed   float64
	Grounded        bool
	RunProgress     float64
	JumpProgress    float64
}

func (c *MovementController) Telemetry() Telemetry {
	return Telemetry{
		Tick:            c.tick,
		MoveX:           c.lastMoveX,
		Position:        c.state.Position,
		JumpTargetY:     c.state.JumpTargetY,
		Ascending:       c.state.Ascending,
		Dash:            c.state.Dash,
		HorizontalSpeed: c.speedX,
		VerticalSpeed:   c.speedY,
		Grounded:        c.grounded,
		RunProgress:     c.state.RunProgress,
		JumpProgress:    c.state.JumpProgress,
	}
}

// PanelLine is one "label: value" row of the debug panel.
type PanelLine struct {
	Label string
	Value string
	Color color.Color
}

func (l PanelLine) String() string {
	return l.Label + ": " + l.Value
}

// SignColor is red for negative, green for positive and yellow for zero.
func SignColor(v float64) color.Color {
	switch {
	case v < 0:
		return colornames.Red
	case v > 0:
		return colornames.Green
	default:
		return colornames.Yellow
	}
}

func boolColor(b bool) color.Color {
	if b {
		return colornames.Green
	}
	return colornames.Red
}

// DebugPanel lays out the telemetry the way the in-game overlay shows it.
func DebugPanel(t Telemetry) []PanelLine {
	dashColor := color.Color(colornames.Yellow)
	if t.Dash != DashIdle {
		dashColor = colornames.Green
	}
	return []PanelLine{
		{Label: "inputMovement", Value: formatFloat(t.MoveX), Color: SignColor(t.MoveX)},
		{Label: "position", Value: t.Position.String(), Color: colornames.White},
		{Label: "jumpEnd", Value: formatFloat(t.JumpTargetY), Color: colornames.White},
		{Label: "gainingHeight", Value: fmt.Sprint(t.Ascending), Color: boolColor(t.Ascending)},
		{Label: "grounded", Value: fmt.Sprint(t.Grounded), Color: boolColor(t.Grounded)},
		{Label: "dash", Value: t.Dash.String(), Color: dashColor},
		{Label: "speedX", Value: formatFloat(t.HorizontalSpeed), Color: SignColor(t.HorizontalSpeed)},
		{Label: "speedY", Value: formatFloat(t.VerticalSpeed), Color: SignColor(t.VerticalSpeed)},
		{Label: "runProgress", Value: formatFloat(t.RunProgress), Color: SignColor(t.RunProgress)},
	}
}

// PanelText joins the panel into plain multi-line text.
func PanelText(lines []PanelLine) string {
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
