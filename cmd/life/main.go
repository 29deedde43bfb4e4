//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/JavaHello/game-life/internal/app"
	"github.com/JavaHello/game-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctrl, err := life.New(cfg.LifeConfig(), nil)
	if err != nil {
		log.Fatalf("invalid grid: %v", err)
	}

	game := app.New(ctrl, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
