// The bakehouse notifier: consumes inquiry and order events and emails
// the shop owner.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "net/http/pprof"

	"github.com/mayasbakes/bakehouse/internal/notifier"
	"github.com/mayasbakes/bakehouse/pkg/bootstrap"
	"github.com/mayasbakes/bakehouse/pkg/config/configloader"
	pkgnats "github.com/mayasbakes/bakehouse/pkg/nats"
	"golang.org/x/sync/errgroup"
)

const serviceName = "notifier"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
	log.Println("application stopped gracefully")
}

// run initializes the worker, connects to NATS and starts the consumers.
func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*notifier.Config](serviceName)
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}
	log.Printf("Configuration loaded: %v", cfg)

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	nc, err := pkgnats.NewClient(cfg.Nats.URL, cfg.Nats.Timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer nc.Close()
	js, err := pkgnats.NewJetStreamContext(nc)
	if err != nil {
		return fmt.Errorf("failed to create JetStream context: %w", err)
	}
	logger.Info("Successfully connected to NATS!")

	mailer := notifier.NewResendMailer(cfg.Mailer)

	g, gCtx := errgroup.WithContext(ctx)

	// Start the event consumers
	g.Go(func() error {
		logger.Info("Starting notifier workers",
			slog.String("stream", cfg.Subscriber.Stream),
			slog.String("subject", cfg.Subscriber.Subject),
			slog.Int("workers", cfg.Subscriber.Workers))
		return notifier.Start(gCtx, js, cfg.Subscriber, mailer, logger)
	})

	// Start the pprof server if enabled
	if cfg.PProf.Enabled {
		pprofServer := &http.Server{Addr: cfg.PProf.Addr}
		g.Go(func() error {
			logger.Info("Pprof server listening", slog.String("addr", pprofServer.Addr))
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("pprof server failed: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gCtx.Done()
			logger.Info("Shutting down pprof server...")
			return pprofServer.Close()
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("errgroup encountered an error: %w", err)
	}
	return nil
}
