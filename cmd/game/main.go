package main

import (
	"log"

	"dotfall/internal/config"
	"dotfall/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := game.DefaultConfig()
	cfg.Speed = game.ParseSpeed(config.GetEnv("DOTFALL_SPEED", "60"))

	app, err := game.NewApp(cfg)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ebiten.SetWindowTitle("Dotfall")
	ebiten.SetWindowSize(app.WindowSize())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FramesPerSecond)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
