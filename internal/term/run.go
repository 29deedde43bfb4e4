package term

import (
	"context"
	"errors"
	"time"

	"github.com/JavaHello/game-life/internal/core"
	"github.com/JavaHello/game-life/internal/driver"
	"github.com/JavaHello/game-life/internal/input"
	"github.com/JavaHello/game-life/internal/sims/life"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// Run draws ctrl on an initialised screen and runs the driver and the event
// loop until the user quits or ctx is cancelled. The caller owns screen and
// must call Fini afterwards.
func Run(ctx context.Context, screen tcell.Screen, ctrl *life.Controller, period time.Duration) error {
	screen.EnableMouse()
	r := NewRenderer(screen)
	ctrl.SetRenderer(r)
	r.RequestRedraw(ctrl.Snapshot())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, 64)
	go screen.ChannelEvents(events, gctx.Done())

	in := NewInput(input.NewGateway(ctrl, 1))
	g.Go(func() error {
		return driver.New(ctrl, period).Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		for {
			select {
			case <-gctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				if _, resized := ev.(*tcell.EventResize); resized {
					screen.Sync()
					continue
				}
				quit, err := in.Handle(ev)
				if err != nil && !errors.Is(err, core.ErrOutOfRange) {
					return err
				}
				if quit {
					return nil
				}
			}
		}
	})
	return g.Wait()
}
