package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	briefhttp "github.com/fwojciec/brief/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is cancelled
// or SIGINT/SIGTERM is received, then drains in-flight requests.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(deps.Server.ListenAndServe)

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), briefhttp.ShutdownTimeout)
		defer cancel()
		return deps.Server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
