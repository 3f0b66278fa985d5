package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/networkteam/buttonkit/gallery"
	"github.com/networkteam/buttonkit/internal/config"
)

type serveFlags struct {
	configPath string
	addr       string
	pathPrefix string
	title      string
	logLevel   string
	logFile    string
}

func newServeCmd() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the button gallery over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&flags.addr, "addr", "", "Listen address (default localhost:1095)")
	cmd.Flags().StringVar(&flags.pathPrefix, "path-prefix", "", "Mount the gallery below this path, e.g. /_buttons")
	cmd.Flags().StringVar(&flags.title, "title", "", "Title shown on gallery pages")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Additionally write JSON logs to this file")

	return cmd
}

// config loads the config file, if any, and applies flags that were set explicitly.
func (f *serveFlags) config(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("addr") {
		cfg.Addr = f.addr
	}
	if changed("path-prefix") {
		cfg.PathPrefix = f.pathPrefix
	}
	if changed("title") {
		cfg.Title = f.title
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("log-file") {
		cfg.LogFile = f.logFile
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runServe(ctx context.Context, cmd *cobra.Command, cfg config.Config) error {
	logger, closeLog, err := newLogger(cmd.ErrOrStderr(), cfg.SlogLevel(), cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := newServer(cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting gallery server", slog.String("addr", cfg.Addr), slog.String("pathPrefix", cfg.PathPrefix))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down gallery server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newServer(cfg config.Config, logger *slog.Logger) *http.Server {
	prefix := strings.TrimSuffix(cfg.PathPrefix, "/")

	handler := gallery.NewHandler(
		gallery.WithPathPrefix(prefix),
		gallery.WithTitle(cfg.Title),
		gallery.WithTailwindScriptURL(cfg.TailwindScriptURL),
		gallery.WithLogger(logger),
	)

	mux := http.NewServeMux()
	if prefix == "" {
		mux.Handle("/", handler)
	} else {
		mux.Handle(prefix+"/", http.StripPrefix(prefix, handler))
		mux.Handle("GET /{$}", http.RedirectHandler(prefix+"/", http.StatusTemporaryRedirect))
	}

	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           logRequests(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func logRequests(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.DebugContext(r.Context(), "Handled request",
			slog.Group("request", slog.String("method", r.Method), slog.String("path", r.URL.Path)),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
