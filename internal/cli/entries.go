package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devjourney/devjourney-backend/internal/client"
	"github.com/devjourney/devjourney-backend/internal/journal/domain"
)

func (a *app) entriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entries",
		Aliases: []string{"entry", "e"},
		Short:   "Log progress entries",
	}
	cmd.AddCommand(a.entriesAddCmd())
	return cmd
}

func (a *app) entriesAddCmd() *cobra.Command {
	var (
		req     client.AddEntryRequest
		snippet string
	)

	cmd := &cobra.Command{
		Use:   "add <project-id>",
		Short: "Append an entry to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(req.Title) == "" {
				return fmt.Errorf("--title is required")
			}
			if req.TimeSpent < 0 {
				return fmt.Errorf("--minutes must not be negative")
			}
			mood, err := domain.ParseMood(req.Mood)
			if err != nil {
				return fmt.Errorf("--mood must be one of %s", moodList())
			}
			req.Mood = string(mood)
			if snippet != "" {
				req.CodeSnippet = &snippet
			}

			c, err := a.client()
			if err != nil {
				return err
			}
			e, err := c.AddEntry(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s Logged %q (%s)\n", e.Mood.Icon(), e.Title, domain.FormatMinutes(e.TimeSpent))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Title, "title", "", "entry title")
	f.StringVar(&req.Content, "content", "", "what you worked on")
	f.StringVar(&req.Mood, "mood", string(domain.MoodProductive), "one of "+moodList())
	f.IntVar(&req.TimeSpent, "minutes", 0, "time spent in minutes")
	f.StringVar(&snippet, "snippet", "", "code snippet")
	f.StringArrayVar(&req.Resources, "resource", nil, "resource URL (repeatable)")
	return cmd
}

func moodList() string {
	moods := domain.AllMoods()
	names := make([]string, len(moods))
	for i, m := range moods {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
