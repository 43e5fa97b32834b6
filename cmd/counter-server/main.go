package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/filipedpsilva/counter/config"
	"github.com/filipedpsilva/counter/server"
	"github.com/filipedpsilva/counter/session"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatal(err)
	}

	logger := log.New(os.Stderr, "counter: ", log.LstdFlags)
	store := session.NewCacheStore(cfg.SessionTTL, cfg.CleanupInterval)
	srv, err := server.New(store, logger)
	if err != nil {
		log.Fatal(err)
	}

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv,
	}
	httpServer.RegisterOnShutdown(srv.CloseLive)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Printf("listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		monitor := session.NewMonitor(store, cfg.StatsInterval, func(live int) {
			logger.Printf("%d live counters", live)
		})
		monitor.Run(ctx)
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
