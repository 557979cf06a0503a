package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devjourney/devjourney-backend/internal/client"
)

func (a *app) projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "p"},
		Short:   "List, show and create projects",
	}
	cmd.AddCommand(a.projectsListCmd(), a.projectsShowCmd(), a.projectsCreateCmd())
	return cmd
}

func (a *app) projectsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			projects, err := c.ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			renderProjectList(cmd.OutOrStdout(), projects)
			return nil
		},
	}
}

func (a *app) projectsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a project's timeline and stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			p, err := c.GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			stats, err := c.ProjectStats(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderProject(cmd.OutOrStdout(), p, stats)
			return nil
		},
	}
}

func (a *app) projectsCreateCmd() *cobra.Command {
	var (
		req     client.CreateProjectRequest
		github  string
		demo    string
		private bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(req.Title) == "" {
				return fmt.Errorf("--title is required")
			}
			if github != "" {
				req.GithubURL = &github
			}
			if demo != "" {
				req.DemoURL = &demo
			}
			req.IsPublic = !private

			c, err := a.client()
			if err != nil {
				return err
			}
			p, err := c.CreateProject(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Created project %s (%s)\n", titleStyle.Render(p.Title), p.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Title, "title", "", "project title")
	f.StringVar(&req.Description, "description", "", "short description")
	f.StringSliceVar(&req.Tags, "tag", nil, "tag (repeatable or comma-separated)")
	f.StringVar(&github, "github", "", "GitHub repository URL")
	f.StringVar(&demo, "demo", "", "live demo URL")
	f.BoolVar(&private, "private", false, "hide the project from public listings")
	return cmd
}
