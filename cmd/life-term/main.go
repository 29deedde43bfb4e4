package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/JavaHello/game-life/internal/app"
	"github.com/JavaHello/game-life/internal/sims/life"
	"github.com/JavaHello/game-life/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctrl, err := life.New(cfg.LifeConfig(), nil)
	if err != nil {
		log.Fatalf("invalid grid: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.Run(ctx, screen, ctrl, cfg.Period)
	stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
