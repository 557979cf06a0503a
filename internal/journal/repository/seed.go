package repository

import (
	"time"

	"github.com/devjourney/devjourney-backend/internal/journal/domain"
)

// DemoProjects returns the sample journal used when SEED_DEMO_DATA is set.
func DemoProjects() []domain.Project {
	ts := func(s string) time.Time {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			panic(err)
		}
		return t
	}
	str := func(s string) *string { return &s }

	return []domain.Project{
		{
			ID:          "1",
			Title:       "E-commerce Platform",
			Description: "A full-stack e-commerce platform with React, Node.js and MongoDB",
			CreatedAt:   ts("2024-04-28T12:00:00Z"),
			UpdatedAt:   ts("2024-05-02T15:30:00Z"),
			UserID:      "user1",
			Tags:        []string{"React", "Node.js", "MongoDB", "Express"},
			GithubURL:   str("https://github.com/username/ecommerce"),
			DemoURL:     str("https://myecommerce-demo.com"),
			IsPublic:    true,
			Entries: []domain.Entry{
				{
					ID:          "e1",
					ProjectID:   "1",
					Title:       "Initial project setup",
					Content:     "Set up the React project using Vite and configured the basic file structure. Installed React Router and Tailwind CSS.",
					CreatedAt:   ts("2024-04-28T14:30:00Z"),
					Mood:        domain.MoodProductive,
					TimeSpent:   120,
					CodeSnippet: str("npm create vite@latest my-project -- --template react-ts\ncd my-project\nnpm install\nnpm install react-router-dom tailwindcss"),
					Resources:   []string{"https://vitejs.dev/guide/", "https://tailwindcss.com/docs/installation"},
				},
				{
					ID:        "e2",
					ProjectID: "1",
					Title:     "User authentication implementation",
					Content:   "Implemented user authentication with JWT. Created login and signup forms and an authentication context for user state.",
					CreatedAt: ts("2024-04-30T10:15:00Z"),
					Mood:      domain.MoodLearning,
					TimeSpent: 180,
					Resources: []string{"https://jwt.io/introduction"},
				},
				{
					ID:        "e3",
					ProjectID: "1",
					Title:     "Product listing page",
					Content:   "Created the product listing page with filtering, sorting and pagination.",
					CreatedAt: ts("2024-05-02T15:30:00Z"),
					Mood:      domain.MoodProductive,
					TimeSpent: 240,
					Resources: []string{"https://reactjs.org/docs/hooks-effect.html"},
				},
			},
		},
		{
			ID:          "2",
			Title:       "Weather Dashboard",
			Description: "A weather dashboard using OpenWeatherMap API with React",
			CreatedAt:   ts("2024-04-25T09:00:00Z"),
			UpdatedAt:   ts("2024-05-01T11:20:00Z"),
			UserID:      "user1",
			Tags:        []string{"React", "API Integration", "Tailwind CSS"},
			GithubURL:   str("https://github.com/username/weather-app"),
			IsPublic:    true,
			Entries: []domain.Entry{
				{
					ID:        "e4",
					ProjectID: "2",
					Title:     "Project initialization",
					Content:   "Started a new React project for a weather dashboard. Set up the basic structure and installed dependencies.",
					CreatedAt: ts("2024-04-25T10:30:00Z"),
					Mood:      domain.MoodPlanning,
					TimeSpent: 60,
				},
				{
					ID:        "e5",
					ProjectID: "2",
					Title:     "API integration",
					Content:   "Integrated the OpenWeatherMap API with a service for current weather and forecast data.",
					CreatedAt: ts("2024-04-27T14:00:00Z"),
					Mood:      domain.MoodLearning,
					TimeSpent: 150,
				},
				{
					ID:        "e6",
					ProjectID: "2",
					Title:     "UI design implementation",
					Content:   "Designed the UI with Tailwind CSS and a responsive layout for different device sizes.",
					CreatedAt: ts("2024-05-01T11:20:00Z"),
					Mood:      domain.MoodProductive,
					TimeSpent: 180,
				},
			},
		},
	}
}
