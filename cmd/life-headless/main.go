package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"

	"github.com/JavaHello/game-life/internal/sims/life"

	"golang.org/x/sync/errgroup"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type result struct {
	seed       int64
	generation int64
	population int
	board      string
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per seed")
	seeds := flag.Int("seeds", 1, "number of consecutive seeds to run")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel simulations")
	show := flag.Bool("print", false, "print the final board of each run")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (w, h, seed; repeatable)")
	flag.Parse()

	kv := map[string]string{}
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("bad override %q, want key=value", o)
		}
		kv[parts[0]] = parts[1]
	}
	base := life.FromMap(kv)
	if *seeds < 1 {
		*seeds = 1
	}

	results := make([]result, *seeds)
	var g errgroup.Group
	g.SetLimit(max(*workers, 1))
	for i := range results {
		cfg := base
		cfg.Seed = base.Seed + int64(i)
		g.Go(func() error {
			r, err := simulate(cfg, *steps, *show)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	for _, r := range results {
		fmt.Printf("seed=%d generation=%d population=%d\n", r.seed, r.generation, r.population)
		if *show {
			fmt.Print(r.board)
		}
	}
}

func simulate(cfg life.Config, steps int, withBoard bool) (result, error) {
	ctrl, err := life.New(cfg, nil)
	if err != nil {
		return result{}, fmt.Errorf("seed %d: %w", cfg.Seed, err)
	}
	for i := 0; i < steps; i++ {
		ctrl.Tick()
	}
	r := result{seed: cfg.Seed, generation: ctrl.Generation(), population: ctrl.Population()}
	if withBoard {
		r.board = ctrl.String()
	}
	return r, nil
}
