// Package main is the fabconsole command: a thin CLI over the console
// client for scripting and troubleshooting.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pitabwire/fabconsole/config"
	"github.com/pitabwire/fabconsole/console"
	"github.com/pitabwire/fabconsole/internal/observability"
)

// Build-time variables set via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=abc1234"
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, prometheus.DefaultRegisterer)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, reg prometheus.Registerer) int {
	a := &app{stdout: stdout, stderr: stderr, registerer: reg}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if cerr := a.close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// app holds the state shared by every command. The service is built on
// first use so that commands such as operations work without a console.
type app struct {
	configPath string
	serviceURL string
	debug      bool

	stdout, stderr io.Writer
	registerer     prometheus.Registerer

	logger   *zap.Logger
	svc      *console.Service
	shutdown func(context.Context) error
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "fabconsole",
		Short:         "Client for the blockchain console REST API",
		Version:       version + " (" + commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to configuration file (default: BLOCKCHAIN_* environment only)")
	root.PersistentFlags().StringVar(&a.serviceURL, "service-url", "", "console URL, overrides the configuration")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log every request and response to stderr")

	root.AddCommand(
		a.operationsCommand(),
		a.callCommand(),
		a.healthCommand(),
		a.versionsCommand(),
		a.verifyCommand(),
	)
	return root
}

// service wires the client on first use.
func (a *app) service(ctx context.Context) (*console.Service, error) {
	if a.svc != nil {
		return a.svc, nil
	}

	// Step 1: Load configuration, flags last.
	cfg, err := config.Read(a.configPath)
	if err != nil {
		return nil, err
	}
	if a.serviceURL != "" {
		cfg.ServiceURL = a.serviceURL
	}
	if a.debug {
		cfg.Observability.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation: %w", err)
	}

	// Step 2: Initialize telemetry.
	observability.Version = version
	observability.Commit = commit

	logger, err := observability.NewLogger(cfg.Observability)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	a.logger = logger

	shutdown, err := observability.InitTracing(ctx, cfg.Observability.Tracing, "fabconsole", version)
	if err != nil {
		return nil, err
	}
	a.shutdown = shutdown

	// Step 3: Build the client.
	svc, err := console.New(cfg,
		console.WithLogger(logger),
		console.WithMetrics(a.registerer),
	)
	if err != nil {
		return nil, err
	}
	a.svc = svc

	logger.Info("fabconsole started",
		zap.String("version", version),
		zap.String("service_url", cfg.ServiceBase()),
		zap.String("auth", cfg.Auth.Type),
	)
	return svc, nil
}

func (a *app) close() error {
	var errs []error
	if a.shutdown != nil {
		if err := a.shutdown(context.Background()); err != nil {
			errs = append(errs, fmt.Errorf("tracing shutdown: %w", err))
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return errors.Join(errs...)
}
