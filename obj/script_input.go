package obj

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/runjump/component"
	"github.com/milk9111/runjump/prefabs"
)

// the script defines input(tick, state) returning {move, jump, dash}
const inputDispatchScript = `
__out := input(__tick, __state)
`

// ScriptInput is an InputReader driven by a tengo script. jump and dash in
// the script's result are "button down" levels; edges are derived here the
// same way a keyboard's just-pressed is.
type ScriptInput struct {
	name     string
	compiled *tengo.Compiled

	moveX    float64
	jumpHeld bool
	dashHeld bool
	jumpEdge bool
	dashEdge bool
}

// LoadScriptInput compiles a script from prefabs/scripts.
func LoadScriptInput(name string) (*ScriptInput, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script input %s: %w", name, err)
	}
	return NewScriptInput(name, src)
}

func NewScriptInput(name string, src []byte) (*ScriptInput, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + inputDispatchScript))
	_ = script.Add("__tick", 0)
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script input %s: compile: %w", name, err)
	}
	return &ScriptInput{name: name, compiled: compiled}, nil
}

// Advance runs the script for tick with the latest telemetry and updates the
// values returned by the InputReader methods.
func (s *ScriptInput) Advance(tick int, t component.Telemetry) error {
	if s == nil || s.compiled == nil {
		return fmt.Errorf("script input: not compiled")
	}
	if err := s.compiled.Set("__tick", tick); err != nil {
		return err
	}
	if err := s.compiled.Set("__state", telemetryMap(t)); err != nil {
		return err
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("script input %s: tick %d: %w", s.name, tick, err)
	}

	out := s.compiled.Get("__out").Map()
	if out == nil {
		return fmt.Errorf("script input %s: input() must return a map", s.name)
	}

	jump := asBool(out["jump"])
	dash := asBool(out["dash"])
	s.moveX = asFloat(out["move"])
	s.jumpEdge = jump && !s.jumpHeld
	s.dashEdge = dash && !s.dashHeld
	s.jumpHeld = jump
	s.dashHeld = dash
	return nil
}

func (s *ScriptInput) DirectionalInput() float64 { return s.moveX }
func (s *ScriptInput) JumpHeld() bool            { return s.jumpHeld }
func (s *ScriptInput) JumpEdge() bool            { return s.jumpEdge }
func (s *ScriptInput) DashEdge() bool            { return s.dashEdge }

func (s *ScriptInput) Name() string {
	return strings.TrimSuffix(s.name, ".tengo")
}

func telemetryMap(t component.Telemetry) map[string]any {
	return map[string]any{
		"tick":       t.Tick,
		"x":          t.Position.X,
		"y":          t.Position.Y,
		"grounded":   t.Grounded,
		"ascending":  t.Ascending,
		"dashing":    t.Dash != component.DashIdle,
		"speed_x":    t.HorizontalSpeed,
		"speed_y":    t.VerticalSpeed,
		"jump_end_y": t.JumpTargetY,
	}
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

func asBool(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
