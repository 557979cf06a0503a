package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/devjourney/devjourney-backend/internal/client"
)

type app struct {
	cfgFile   string
	serverURL string
	cfg       *Config

	// swapped in tests
	copyToClipboard func(string) error
}

// NewRootCmd builds the devjournal command tree.
func NewRootCmd() *cobra.Command {
	a := &app{copyToClipboard: writeClipboard}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "devjournal",
		Short:         "Track your developer journey from the terminal",
		Long:          `devjournal talks to a DevJourney server: list and create projects, log progress entries, and share a project's timeline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.devjournal/config.yaml)")
	root.PersistentFlags().StringVar(&a.serverURL, "server", "", "server base URL (overrides config)")

	root.AddCommand(
		a.projectsCmd(),
		a.entriesCmd(),
		a.shareCmd(),
		a.whoamiCmd(),
		a.configCmd(),
	)
	return root
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func (a *app) loadConfig() error {
	c, err := LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if a.serverURL != "" {
		c.ServerURL = a.serverURL
	}
	a.cfg = c
	return nil
}

func (a *app) client() (*client.Client, error) {
	return client.New(a.cfg.ServerURL, client.Options{
		Token:   a.cfg.Token,
		UserID:  a.cfg.UserID,
		Timeout: time.Duration(a.cfg.TimeoutSec) * time.Second,
	})
}
