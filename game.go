package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/runjump/common"
	"github.com/milk9111/runjump/component"
	"github.com/milk9111/runjump/obj"
	"github.com/milk9111/runjump/prefabs"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int
	debug  bool
	paused bool

	input  *obj.Input
	bot    *obj.ScriptInput
	spec   *prefabs.PlayerSpec
	level  *obj.Level
	player *obj.Player
	camera *obj.Camera

	watcher  *prefabs.Watcher
	pauseUI  *ebitenui.UI
	overlay  *debugOverlay
	pixel    *ebiten.Image
	respawns int
}

// NewGame loads the player and level prefabs. A non-empty scriptName replaces
// the keyboard with a scripted bot.
func NewGame(scriptName string, debug bool) (*Game, error) {
	g := &Game{
		debug:   debug,
		input:   obj.NewInput(),
		overlay: newDebugOverlay(),
		pixel:   ebiten.NewImage(1, 1),
	}
	g.pixel.Fill(color.White)

	if err := g.load(); err != nil {
		return nil, err
	}

	if scriptName != "" {
		bot, err := obj.LoadScriptInput(scriptName)
		if err != nil {
			return nil, err
		}
		g.bot = bot
	}

	w, err := prefabs.NewWatcher(prefabs.Dir(), filepath.Join(prefabs.Dir(), "scripts"))
	if err != nil {
		log.Printf("prefab hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// load (re)builds the level and player from the prefabs.
func (g *Game) load() error {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	lvl, err := obj.LoadLevel(spec.Probe(), spec.GroundLayers)
	if err != nil {
		return err
	}
	player, err := obj.NewPlayer(spec, lvl)
	if err != nil {
		return err
	}

	g.spec = spec
	g.level = lvl
	g.player = player
	g.respawns = 0
	g.camera = obj.NewCamera(baseWidth, baseHeight, lvl.PixelsPerUnit)
	g.camera.SnapTo(lvl.Spawn)
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.reload()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.copyTelemetry()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.respawn()
	}

	g.input.Update()
	g.player.Sample(g.reader())
	g.player.Update(1 / float64(ebiten.TPS()))

	if g.player.Respawns != g.respawns {
		g.respawns = g.player.Respawns
		g.camera.SnapTo(g.player.Controller.Position())
	} else {
		g.camera.Update(g.player.Controller.Position())
	}
	return nil
}

// reload applies prefab edits picked up by the watcher. A bad edit is logged
// and the previous values stay in effect.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("prefab watcher: %v", err)
	default:
	}

	for _, c := range g.watcher.Poll() {
		switch {
		case c.Kind == prefabs.ScriptChanged:
			if g.bot == nil || c.Name != g.bot.Name()+".tengo" {
				continue
			}
			bot, err := obj.LoadScriptInput(g.bot.Name())
			if err != nil {
				log.Printf("reload %s: %v", c.Name, err)
				continue
			}
			g.bot = bot
		case c.Name == prefabs.PlayerSpecFile:
			spec, err := prefabs.LoadPlayerSpec()
			if err == nil {
				err = g.player.ApplySpec(spec)
			}
			if err != nil {
				log.Printf("reload %s: %v", c.Name, err)
				continue
			}
			g.spec = spec
		case c.Name == prefabs.LevelSpecFile:
			if err := g.load(); err != nil {
				log.Printf("reload %s: %v", c.Name, err)
				continue
			}
		default:
			continue
		}
		log.Printf("reloaded %s", c.Name)
	}
}

// reader advances the bot, if any, and returns it. The keyboard takes over
// when the script fails.
func (g *Game) reader() component.InputReader {
	if g.bot == nil {
		return g.input
	}
	t := g.player.Controller.Telemetry()
	if err := g.bot.Advance(t.Tick, t); err != nil {
		log.Printf("script %s: %v", g.bot.Name(), err)
		g.bot = nil
		return g.input
	}
	return g.bot
}

func (g *Game) respawn() {
	g.player.Respawn()
	g.respawns = g.player.Respawns
	g.camera.SnapTo(g.player.Controller.Position())
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.level.Background)

	for _, p := range g.level.Platforms {
		if !g.camera.Visible(p.Bounds) {
			continue
		}
		g.drawRect(screen, p.Bounds, g.level.LayerColor(p.Layer))
	}
	g.drawRect(screen, g.player.Bounds(), g.spec.Color.ColorOr(colornames.Crimson))

	if g.debug {
		cfg := g.player.Controller.Config()
		g.level.World.DebugDraw(screen, g.camera)
		g.level.World.DebugDrawProbe(screen, g.camera, g.player.Controller.Position(), cfg.HalfHeight)
		g.overlay.Draw(screen, g.player.Controller.Telemetry())
		g.overlay.DrawStatus(screen, fmt.Sprintf("%s  FPS: %.0f  respawns: %d", g.level.Name, ebiten.ActualFPS(), g.player.Respawns))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawRect(screen *ebiten.Image, r common.Rect, c color.Color) {
	x, y, w, h := g.camera.RectToScreen(r)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(g.pixel, op)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
