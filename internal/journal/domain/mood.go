package domain

import (
	"fmt"
	"strings"
)

// Mood is the closed set of qualitative tags describing a work session.
type Mood string

// Declaration order is significant: MostCommonMood breaks ties with it.
const (
	MoodProductive  Mood = "productive"
	MoodStuck       Mood = "stuck"
	MoodLearning    Mood = "learning"
	MoodRefactoring Mood = "refactoring"
	MoodPlanning    Mood = "planning"
)

var allMoods = []Mood{MoodProductive, MoodStuck, MoodLearning, MoodRefactoring, MoodPlanning}

var moodIcons = map[Mood]string{
	MoodProductive:  "🚀",
	MoodStuck:       "🧱",
	MoodLearning:    "📚",
	MoodRefactoring: "🔧",
	MoodPlanning:    "📝",
}

// AllMoods returns the moods in declaration order.
func AllMoods() []Mood {
	out := make([]Mood, len(allMoods))
	copy(out, allMoods)
	return out
}

func (m Mood) Valid() bool {
	_, ok := moodIcons[m]
	return ok
}

// Icon returns the emoji used when rendering a mood.
func (m Mood) Icon() string {
	if icon, ok := moodIcons[m]; ok {
		return icon
	}
	return "❓"
}

// ParseMood is case-insensitive and ignores surrounding whitespace.
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: unknown mood %q", ErrInvalidInput, s)
	}
	return m, nil
}
