package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or initialize devjournal configuration",
	}
	cmd.AddCommand(a.configInitCmd(), a.configShowCmd())
	return cmd
}

func (a *app) configInitCmd() *cobra.Command {
	var (
		token  string
		userID string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfgFile
			if path == "" {
				p, err := DefaultConfigPath()
				if err != nil {
					return err
				}
				path = p
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			c := *a.cfg
			if token != "" {
				c.Token = token
			}
			if userID != "" {
				c.UserID = userID
			}
			if err := SaveConfig(&c, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Firebase ID token sent as a Bearer token")
	cmd.Flags().StringVar(&userID, "user", "", "user id sent as X-User-Id (dev auth mode)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func (a *app) configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "server_url: %s\n", a.cfg.ServerURL)
			fmt.Fprintf(out, "token: %s\n", mask(a.cfg.Token))
			fmt.Fprintf(out, "user_id: %s\n", a.cfg.UserID)
			fmt.Fprintf(out, "timeout_sec: %d\n", a.cfg.TimeoutSec)
			return nil
		},
	}
}

func mask(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "****" + s[len(s)-4:]
}
