package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	scriptName := flag.String("script", "patrol.tengo", "behavior script in content/scripts/ (empty for manual control only)")
	worldName := flag.String("world", "arena.yaml", "world spec in content/specs/")
	watch := flag.Bool("watch", false, "hot-reload tuning and behavior scripts from content/")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	game, err := NewGame(*worldName, *scriptName, *watch, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("stride")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
