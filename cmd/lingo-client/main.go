// Command lingo-client is a terminal client for the lingo translation
// service.
package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/smallnest/lingo/internal/log"
	"github.com/smallnest/lingo/pkg/client"
)

var (
	baseURL  string
	timeout  time.Duration
	retries  int
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "lingo-client",
	Short: "Terminal client for the lingo translation service",
	Long: `lingo-client talks to a running lingo-server instance.

Examples:
  lingo-client health
  lingo-client translate --language French "Hello, world!"
  lingo-client suite
  lingo-client interactive`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&baseURL, "base-url", "http://127.0.0.1:8000", "Base URL of the lingo server")
	pf.DurationVar(&timeout, "timeout", client.DefaultTimeout, "Per-request timeout")
	pf.IntVar(&retries, "retries", client.DefaultRetries, "Total attempts per request including the first")
	pf.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error, none)")
}

// newClient builds the API client. Retry warnings go through the
// logger, so the default level keeps them visible.
func newClient() *client.Client {
	return client.New(baseURL,
		client.WithTimeout(timeout),
		client.WithRetries(retries),
		client.WithClientLogger(log.NewGolog(log.ParseLevel(logLevel))),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
