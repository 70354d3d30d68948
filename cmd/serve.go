package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/anshul/memodeck/internal/cardgen"
	"github.com/anshul/memodeck/internal/config"
	"github.com/anshul/memodeck/internal/httpapi"
	"github.com/anshul/memodeck/internal/llm"
	"github.com/anshul/memodeck/internal/store"
	"github.com/anshul/memodeck/internal/tutor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe opens the store, builds dependencies, and runs the HTTP
// server until interrupted.
func runServe(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := newLogger(cfg.Log)

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProvider(cmd.Context(), cfg.ToLLM(), st.LLMEventRepo())
	if err != nil {
		log.WithError(err).Warn("LLM provider not configured; AI features will fail until one is")
		provider = llm.NewUnavailableProvider(err)
	}
	tutorClient := tutor.NewClient(provider)

	server := httpapi.NewServer(httpapi.Options{
		Store:         st,
		Tutor:         tutorClient,
		Dispatcher:    tutor.NewDispatcher(tutorClient, log),
		Generator:     cardgen.NewGenerator(provider),
		UserHeader:    cfg.Auth.UserHeader,
		WebhookSecret: cfg.Webhook.Secret,
		Log:           log,
	})

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"addr": httpServer.Addr, "db": dbPath}).Info("server listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newLogger builds the process logger from config. Bad values fall back
// to info/json rather than failing startup.
func newLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}
