package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_palindrome/internal/adapters/httpapi"
	logadapter "github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/internal/adapters/wslive"
	"github.com/baditaflorin/go_palindrome/internal/config"
	"github.com/baditaflorin/go_palindrome/internal/core/palindrome"
	"github.com/baditaflorin/go_palindrome/internal/ports"
	"github.com/baditaflorin/go_palindrome/internal/warmup"
)

// shutdownTimeout bounds how long in-flight requests get after a signal.
const shutdownTimeout = 10 * time.Second

// serverFlags maps command-line flags to the config keys they override.
var serverFlags = map[string]string{
	"port":      "server.port",
	"live-port": "server.live_port",
	"warm-up":   "warm_up",
	"log-file":  "log.file",
	"log-level": "log.level",
}

func main() {
	if err := newServerCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newServerCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "palindrome-server",
		Short:         "Serve palindrome checks over HTTP and WebSocket",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(configFile)
			if err != nil {
				return err
			}
			for name, key := range serverFlags {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
					return fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file (default ./.palindrome.yml)")
	cmd.Flags().Int("port", 0, "HTTP API port")
	cmd.Flags().Int("live-port", 0, "WebSocket live port (0 disables)")
	cmd.Flags().Bool("warm-up", false, "Perform warm-up on startup")
	cmd.Flags().String("log-file", "", "Log file path (empty = stdout)")
	cmd.Flags().String("log-level", "", "Log level (debug|info|warn|error)")

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := createLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Info("Starting palindrome server",
		"port", cfg.Server.Port,
		"live_port", cfg.Server.LivePort,
		"normalizer", cfg.Normalizer,
		"read_timeout", cfg.Server.ReadTimeout,
		"write_timeout", cfg.Server.WriteTimeout,
		"max_request_size", cfg.Server.MaxRequestSize,
		"concurrency", cfg.Server.Concurrency,
	)

	typ, err := normalizer.ParseNormalizerType(cfg.Normalizer)
	if err != nil {
		return err
	}
	norm := normalizer.NewNormalizerFactory().CreateNormalizer(typ)

	evaluator, err := palindrome.NewEvaluator(logger, norm)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.WarmUp {
		wm := warmup.NewManager(logger, warmup.DefaultWarmupConfig())
		wm.RegisterNormalizer(norm)
		wm.RegisterEvaluator(evaluator)
		calls := wm.WarmUp(ctx)
		logger.Info("Warm-up completed", "calls", calls, "cpus", runtime.NumCPU())
	}

	handler := httpapi.NewHandler(logger, evaluator, norm)
	server := &fasthttp.Server{
		Handler:               handler.ServeFastHTTP,
		Name:                  "PalindromeServer",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		MaxRequestBodySize:    cfg.Server.MaxRequestSize,
		Concurrency:           cfg.Server.Concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxConnsPerIP:         0, // unlimited
		MaxRequestsPerConn:    0, // unlimited
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	apiAddr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	go func() {
		logger.Info("HTTP API listening", "address", apiAddr)
		errCh <- server.ListenAndServe(apiAddr)
	}()

	var liveServer *http.Server
	if cfg.Server.LivePort > 0 {
		liveServer = newLiveServer(logger, evaluator, cfg)
		go func() {
			logger.Info("Live socket listening", "address", liveServer.Addr)
			if err := liveServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	case serveErr = <-errCh:
		logger.Error("Server error", "error", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("Error during server shutdown", "error", err)
	}
	if liveServer != nil {
		if err := liveServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error during live socket shutdown", "error", err)
		}
	}

	logger.Info("Server stopped")
	return serveErr
}

// newLiveServer mounts the WebSocket endpoint on its own net/http server.
func newLiveServer(logger ports.Logger, evaluator ports.Evaluator, cfg *config.Config) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/live", wslive.NewServer(logger, evaluator, wslive.Config{
		ReadLimit:      int64(cfg.Server.MaxRequestSize),
		OriginPatterns: cfg.Server.AllowedOrigins,
	}))

	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.LivePort)),
		Handler:           mux,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
	}
}

// createLogger creates and configures a logger
func createLogger(cfg config.LogConfig) (ports.Logger, error) {
	level, err := logadapter.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	std, err := logadapter.NewStdLoggerWithOptions(logadapter.Options{
		File: cfg.File,
		JSON: cfg.JSON,
	})
	if err != nil {
		return nil, err
	}
	return logadapter.WithLevel(std, level), nil
}
