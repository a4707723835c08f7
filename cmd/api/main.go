package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"virtual-pet/internal/domain/devtools"
	"virtual-pet/internal/platform/config"
	"virtual-pet/internal/platform/logger"
	"virtual-pet/internal/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env opcional para dev; el entorno real tiene prioridad.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	lg := cfg.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	journal := devtools.NewJournal(0)
	timer := devtools.NewTimer(journal, cfg.DemoTickInterval, lg)

	r := router.NewRouter(router.Options{
		Logger:         lg,
		DefaultPetName: cfg.DefaultPetName,
		RevertAfter:    cfg.EffectRevertAfter,
		Journal:        journal,
		Timer:          timer,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("starting server", logger.Fields{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		lg.Info("shutting down", nil)
		timer.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		lg.Error("server error", logger.Fields{"error": err})
		os.Exit(1)
	}
	lg.Info("stopped", nil)
}
