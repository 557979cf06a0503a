package http

import (
	"github.com/devjourney/devjourney-backend/internal/journal/domain"
	"github.com/devjourney/devjourney-backend/internal/journal/service"
)

type Handler struct {
	svc *service.JournalService
}

func New(svc *service.JournalService) *Handler {
	return &Handler{svc: svc}
}

type createProjectReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	GithubURL   *string  `json:"githubUrl"`
	DemoURL     *string  `json:"demoUrl"`
	IsPublic    *bool    `json:"isPublic"`
}

func (r createProjectReq) input(userID string) domain.CreateProjectInput {
	public := true
	if r.IsPublic != nil {
		public = *r.IsPublic
	}
	return domain.CreateProjectInput{
		Title:       r.Title,
		Description: r.Description,
		Tags:        r.Tags,
		GithubURL:   r.GithubURL,
		DemoURL:     r.DemoURL,
		IsPublic:    public,
		UserID:      userID,
	}
}

type addEntryReq struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Mood        string   `json:"mood"`
	TimeSpent   int      `json:"timeSpent"`
	CodeSnippet *string  `json:"codeSnippet"`
	Resources   []string `json:"resources"`
}

func (r addEntryReq) input() domain.AddEntryInput {
	return domain.AddEntryInput{
		Title:       r.Title,
		Content:     r.Content,
		Mood:        domain.Mood(r.Mood),
		TimeSpent:   r.TimeSpent,
		CodeSnippet: r.CodeSnippet,
		Resources:   r.Resources,
	}
}
