package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/runjump/component"
	"github.com/milk9111/runjump/obj"
	"github.com/milk9111/runjump/prefabs"
)

func main() {
	script := flag.String("script", "demo", "tengo script in prefabs/scripts that drives the player")
	ticks := flag.Int("ticks", 400, "number of fixed ticks to simulate")
	every := flag.Int("every", 10, "print telemetry every N ticks (0 prints only the final tick)")
	panel := flag.Bool("panel", false, "print the full debug panel instead of one line per sample")
	flag.Parse()

	if err := run(*script, *ticks, *every, *panel); err != nil {
		log.Fatal(err)
	}
}

// run steps the player headlessly at the prefab tick rate, feeding it the
// script's input one tick at a time.
func run(scriptName string, ticks, every int, panel bool) error {
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
	bot, err := obj.LoadScriptInput(scriptName)
	if err != nil {
		return err
	}

	log.Printf("simulating %s on %s for %d ticks at %.0f Hz", bot.Name(), lvl.Name, ticks, 1/player.Step())

	for tick := 0; tick < ticks; tick++ {
		if err := bot.Advance(tick, player.Controller.Telemetry()); err != nil {
			return err
		}
		player.Sample(bot)
		player.FixedTick()

		last := tick == ticks-1
		if last || (every > 0 && tick%every == 0) {
			report(player.Controller.Telemetry(), panel)
		}
	}

	if player.Respawns > 0 {
		log.Printf("player fell out of %s %d time(s)", lvl.Name, player.Respawns)
	}
	return nil
}

func report(t component.Telemetry, panel bool) {
	if panel {
		fmt.Fprintf(os.Stdout, "-- tick %d --\n%s\n", t.Tick, component.PanelText(component.DebugPanel(t)))
		return
	}
	fmt.Fprintf(os.Stdout, "%5d pos=%s grounded=%-5v ascending=%-5v dash=%-13s vx=%8.3f vy=%8.3f\n",
		t.Tick, t.Position, t.Grounded, t.Ascending, t.Dash, t.HorizontalSpeed, t.VerticalSpeed)
}
