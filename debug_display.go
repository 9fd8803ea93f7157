package main

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/runjump/component"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayMargin     = 8
	overlayLineHeight = 16
)

// debugOverlay draws the movement telemetry panel in the top-left corner,
// one colored line per value.
type debugOverlay struct {
	face ebtext.Face
}

func newDebugOverlay() *debugOverlay {
	return &debugOverlay{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (d *debugOverlay) Draw(screen *ebiten.Image, t component.Telemetry) {
	for i, line := range component.DebugPanel(t) {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(overlayMargin, float64(overlayMargin+i*overlayLineHeight))
		op.ColorScale.ScaleWithColor(line.Color)
		ebtext.Draw(screen, line.String(), d.face, op)
	}
}

// DrawStatus writes a single line along the bottom edge.
func (d *debugOverlay) DrawStatus(screen *ebiten.Image, msg string) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(overlayMargin, float64(screen.Bounds().Dy()-overlayMargin-overlayLineHeight))
	op.ColorScale.ScaleWithColor(colornames.White)
	ebtext.Draw(screen, msg, d.face, op)
}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copyTelemetry puts the current debug panel on the system clipboard.
func (g *Game) copyTelemetry() {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		log.Printf("clipboard unavailable: %v", clipboardErr)
		return
	}
	text := component.PanelText(component.DebugPanel(g.player.Controller.Telemetry()))
	clipboard.Write(clipboard.FmtText, []byte(text))
	log.Printf("copied telemetry for tick %d", g.player.Controller.Telemetry().Tick)
}
