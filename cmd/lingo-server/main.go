// Command lingo-server runs the lingo translation HTTP service.
//
// Configuration is layered: built-in defaults, then LINGO_ prefixed
// environment variables, then command line flags. The provider API key
// is always read from the provider's own environment variable
// (GROQ_API_KEY, OPENAI_API_KEY) and the process refuses to start
// without it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/smallnest/lingo/internal/config"
	"github.com/smallnest/lingo/internal/log"
	"github.com/smallnest/lingo/internal/provider"
	"github.com/smallnest/lingo/internal/server"
	"github.com/smallnest/lingo/internal/translator"
)

const shutdownTimeout = 10 * time.Second

var v = config.New()

var rootCmd = &cobra.Command{
	Use:   "lingo-server",
	Short: "LLM-backed text translation service",
	Long: `lingo-server exposes an LLM translation chain over HTTP.

Endpoints:
  GET  /health         Health check
  POST /translate      Translate text to a target language
  POST /chain/invoke   Alias for /translate

Every flag can also be set through a LINGO_ prefixed environment
variable, for example LINGO_PORT=9000 or LINGO_PROVIDER=ollama. The
provider credential comes from GROQ_API_KEY or OPENAI_API_KEY.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.String("host", "127.0.0.1", "Interface to bind")
	flags.Int("port", 8000, "Port to listen on")
	flags.String("provider", config.ProviderGroq, "LLM provider (groq, openai, ollama)")
	flags.String("model", "", "Model name (provider default when empty)")
	flags.Float64("temperature", 0.5, "Sampling temperature (0-2)")
	flags.Int("max-tokens", 1000, "Completion token limit")
	flags.Duration("provider-timeout", 30*time.Second, "Timeout for a single provider call")
	flags.String("base-url", "", "Override the provider API base URL")
	flags.String("log-level", "info", "Log level (debug, info, warn, error, none)")

	v.BindPFlag(config.KeyHost, flags.Lookup("host"))
	v.BindPFlag(config.KeyPort, flags.Lookup("port"))
	v.BindPFlag(config.KeyProvider, flags.Lookup("provider"))
	v.BindPFlag(config.KeyModel, flags.Lookup("model"))
	v.BindPFlag(config.KeyTemperature, flags.Lookup("temperature"))
	v.BindPFlag(config.KeyMaxTokens, flags.Lookup("max-tokens"))
	v.BindPFlag(config.KeyProviderTimeout, flags.Lookup("provider-timeout"))
	v.BindPFlag(config.KeyProviderBaseURL, flags.Lookup("base-url"))
	v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
}

func run() error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger := log.NewGolog(log.ParseLevel(cfg.LogLevel))

	model, err := provider.New(cfg)
	if err != nil {
		return fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	llm := translator.NewLLMService(model,
		translator.WithProviderName(cfg.Provider),
		translator.WithTemperature(cfg.Temperature),
		translator.WithMaxTokens(cfg.MaxTokens),
		translator.WithLLMLogger(logger),
	)
	svc := translator.NewService(llm, translator.WithLogger(logger))

	srv := server.New(cfg.Address(), svc, server.WithLogger(logger))

	logger.Info("starting lingo server (provider=%s model=%s)", cfg.Provider, cfg.Model)
	logger.Info("endpoints:")
	logger.Info("  GET  /health         - health check")
	logger.Info("  POST /translate      - translate text")
	logger.Info("  POST /chain/invoke   - translate text (chain alias)")

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
