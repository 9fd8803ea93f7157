package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "show the movement debug panel")
	script := flag.String("script", "", "drive the player with a tengo script in prefabs/scripts (basename, .tengo optional)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("runjump")

	if err := run(*script, *debug); err != nil {
		log.Fatal(err)
	}
}

// run owns the game for the lifetime of the window so the prefab watcher is
// closed on every exit path.
func run(script string, debug bool) error {
	game, err := NewGame(script, debug)
	if err != nil {
		return err
	}
	defer game.Close()

	return ebiten.RunGame(game)
}
