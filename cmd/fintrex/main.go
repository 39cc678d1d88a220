package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fintrexai/fintrex"
	"github.com/fintrexai/fintrex/assets"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "fintrex",
		Short: "Fintrex marketing and waitlist site",
		Long: `fintrex serves the Fintrex marketing site: landing pages, blog, case
studies and legal pages, plus the waitlist and contact forms.

Configuration is read from an optional YAML file and FINTREX_* environment
variables, the environment taking precedence.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	load := func(ephemeralSecret bool) (fintrex.SiteConfig, *zap.Logger, error) {
		cfg, err := fintrex.LoadConfig(configPath)
		if errors.Is(err, fintrex.ErrMissingSecret) && ephemeralSecret {
			// sessions never outlive an export run
			cfg.SessionSecret = uuid.NewString()
			err = cfg.Validate()
		}
		if err != nil {
			return cfg, nil, fmt.Errorf("load config: %w", err)
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return cfg, nil, err
		}
		return cfg, logger, nil
	}

	cmd.AddCommand(serveCmd(load), exportCmd(load), assetsCmd(&logLevel))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fintrex %s\n", version)
		},
	})
	return cmd
}

type loader func(ephemeralSecret bool) (fintrex.SiteConfig, *zap.Logger, error)

func newLogger(cfg fintrex.SiteConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Environment == fintrex.EnvDevelopment {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc.Level = level
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func serveCmd(load loader) *cobra.Command {
	var shutdownTimeout time.Duration
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load(false)
			if err != nil {
				return err
			}
			defer logger.Sync()

			app := fintrex.New(cfg, fintrex.DefaultViews(), fintrex.WithLogger(logger))
			if err := app.Setup(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() { errc <- app.Start() }()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			logger.Info("shutting down")
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := app.Echo.Shutdown(sctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return app.Close()
		},
	}
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "Grace period for in-flight requests")
	return cmd
}

func exportCmd(load loader) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every page to static files",
		Long: `Renders every route, blog post and case study, plus the sitemap, feed,
robots.txt and 404 page, into the output directory. Forms in the exported
pages still post to a running server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load(true)
			if err != nil {
				return err
			}
			defer logger.Sync()

			app := fintrex.New(cfg, fintrex.DefaultViews(), fintrex.WithLogger(logger))
			if err := app.Setup(); err != nil {
				return err
			}
			defer app.Close()

			files, err := app.Export(cmd.Context(), out)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "%-60s %8d\n", f.File, f.Bytes)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "Output directory")
	return cmd
}

func assetsCmd(logLevel *string) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Generate icon and social card PNGs from the master images",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := *logLevel
			if level == "" {
				level = "info"
			}
			logger, err := newLogger(fintrex.SiteConfig{Environment: fintrex.EnvDevelopment, LogLevel: level})
			if err != nil {
				return err
			}
			defer logger.Sync()

			report, err := assets.Generate(cmd.Context(), dir, assets.DefaultSpecs(), logger)
			if err != nil {
				return err
			}
			failed := report.Failed()
			fmt.Fprintf(cmd.OutOrStdout(), "Success: %d files\nFailed: %d files\n", report.Succeeded(), len(failed))
			if len(failed) > 0 {
				return fmt.Errorf("%d assets failed, first: %s: %w", len(failed), failed[0].Spec.Name, failed[0].Err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "public", "Directory holding the master images and receiving the PNGs")
	return cmd
}
