package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/devjourney/devjourney-backend/internal/journal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ade80"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#60a5fa"))
	labelStyle = lipgloss.NewStyle().Bold(true)
	statsBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#D4A017")).
			Padding(0, 1)
)

const timeLayout = "Jan 2, 2006 15:04"

func renderProjectList(w io.Writer, projects []domain.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(w, dimStyle.Render("(no projects)"))
		return
	}
	for _, p := range projects {
		fmt.Fprintf(w, "%s  %s\n", titleStyle.Render(p.Title), dimStyle.Render(p.ID))
		meta := fmt.Sprintf("%d entries · updated %s", len(p.Entries), p.UpdatedAt.Local().Format(timeLayout))
		fmt.Fprintf(w, "  %s\n", dimStyle.Render(meta))
		if len(p.Tags) > 0 {
			fmt.Fprintf(w, "  %s\n", renderTags(p.Tags))
		}
	}
}

func renderTags(tags []string) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = tagStyle.Render("#" + t)
	}
	return strings.Join(parts, " ")
}

func renderProject(w io.Writer, p *domain.Project, stats *domain.Stats) {
	visibility := "public"
	if !p.IsPublic {
		visibility = "private"
	}
	fmt.Fprintf(w, "%s  %s\n", titleStyle.Render(p.Title), dimStyle.Render(p.ID+" · "+visibility))
	if p.Description != "" {
		fmt.Fprintln(w, p.Description)
	}
	if len(p.Tags) > 0 {
		fmt.Fprintln(w, renderTags(p.Tags))
	}
	if p.GithubURL != nil {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("GitHub:"), *p.GithubURL)
	}
	if p.DemoURL != nil {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Demo:"), *p.DemoURL)
	}

	if stats != nil {
		fmt.Fprintln(w, statsBox.Render(renderStats(stats)))
	}

	if len(p.Entries) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No entries yet."))
		return
	}
	for i := len(p.Entries) - 1; i >= 0; i-- {
		renderEntry(w, &p.Entries[i])
	}
}

func renderStats(s *domain.Stats) string {
	mood := "-"
	if s.MostCommonMood != nil {
		mood = s.MostCommonMood.Icon() + " " + string(*s.MostCommonMood)
	}
	lines := []string{
		fmt.Sprintf("%s %s", labelStyle.Render("Total time:"), s.TotalFormatted),
		fmt.Sprintf("%s %d", labelStyle.Render("Entries:"), s.EntryCount),
		fmt.Sprintf("%s %s", labelStyle.Render("Avg session:"), s.AverageFormatted),
		fmt.Sprintf("%s %s", labelStyle.Render("Most common mood:"), mood),
	}
	return strings.Join(lines, "\n")
}

func renderEntry(w io.Writer, e *domain.Entry) {
	fmt.Fprintf(w, "\n%s %s  %s\n",
		e.Mood.Icon(),
		labelStyle.Render(e.Title),
		dimStyle.Render(fmt.Sprintf("%s · %s", e.CreatedAt.Local().Format(timeLayout), domain.FormatMinutes(e.TimeSpent))),
	)
	if e.Content != "" {
		fmt.Fprintln(w, e.Content)
	}
	if e.CodeSnippet != nil {
		fmt.Fprintln(w, dimStyle.Render(*e.CodeSnippet))
	}
	for _, r := range e.Resources {
		fmt.Fprintf(w, "  ↳ %s\n", r)
	}
}
