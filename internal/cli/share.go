package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func writeClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard unsupported on this system")
	}
	return clipboard.WriteAll(text)
}

func (a *app) shareCmd() *cobra.Command {
	var noCopy bool

	cmd := &cobra.Command{
		Use:   "share <project-id>",
		Short: "Copy a project's public link to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			s, err := c.ShareLink(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(s.Title))
			fmt.Fprintln(out, s.Text)
			fmt.Fprintln(out, s.URL)

			if noCopy {
				return nil
			}
			if err := a.copyToClipboard(s.URL); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), dimStyle.Render("(could not copy link: "+err.Error()+")"))
				return nil
			}
			fmt.Fprintln(out, dimStyle.Render("✓ Link copied to clipboard"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCopy, "no-copy", false, "print the link without copying it")
	return cmd
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity the server sees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			u, err := c.Me(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", u.UID, u.Provider)
			if u.Email != "" {
				fmt.Fprintln(cmd.OutOrStdout(), u.Email)
			}
			return nil
		},
	}
}
