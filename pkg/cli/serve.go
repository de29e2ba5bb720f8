package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zeronetwork/panelmock/pkg/config"
	"github.com/zeronetwork/panelmock/pkg/logging"
	"github.com/zeronetwork/panelmock/pkg/panel"
)

var (
	serveConfigFile   string
	serveListen       string
	serveAPIPrefix    string
	serveAdminSegment string
	serveLatencyMS    int
	serveLogLevel     string
	serveLogFormat    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the panel emulator",
	Example: `  # Start with defaults on :4300
  panelmock serve

  # Start from a config file with zero simulated latency
  panelmock serve --config panelmock.yaml --latency-ms 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to config file")
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "Listen address (host:port)")
	serveCmd.Flags().StringVar(&serveAPIPrefix, "api-prefix", "", "API path prefix")
	serveCmd.Flags().StringVar(&serveAdminSegment, "admin-segment", "", "Admin path segment under the API prefix")
	serveCmd.Flags().IntVar(&serveLatencyMS, "latency-ms", -1, "Simulated per-request latency in milliseconds")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&serveLogFormat, "log-format", "", "Log format (text, json)")
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if serveConfigFile != "" {
		loaded, err := config.LoadFromFile(serveConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	// Flags win over file and environment.
	if serveListen != "" {
		cfg.Listen = serveListen
	}
	if serveAPIPrefix != "" {
		cfg.APIPrefix = serveAPIPrefix
	}
	if serveAdminSegment != "" {
		cfg.AdminSegment = serveAdminSegment
	}
	if serveLatencyMS >= 0 {
		cfg.LatencyMS = serveLatencyMS
	}
	if serveLogLevel != "" {
		cfg.Log.Level = serveLogLevel
	}
	if serveLogFormat != "" {
		cfg.Log.Format = serveLogFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
		Output: os.Stderr,
	})

	engine := panel.New(
		panel.WithPrefix(cfg.APIPrefix, cfg.AdminSegment),
		panel.WithLatency(time.Duration(cfg.LatencyMS)*time.Millisecond),
		panel.WithLogger(logger),
	)
	srv := panel.NewServer(engine,
		panel.WithAddr(cfg.Listen),
		panel.WithServerLogger(logger),
	)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "panelmock listening on %s (prefix %s)\n", srv.Addr(), cfg.APIPrefix)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("stop server: %w", err)
	}
	return nil
}
