package domain

import (
	"fmt"
	"math"
)

// Stats are derived on read from a project's entries and never persisted.
type Stats struct {
	EntryCount       int    `json:"entryCount"`
	TotalMinutes     int    `json:"totalMinutes"`
	AverageMinutes   int    `json:"averageMinutes"`
	MostCommonMood   *Mood  `json:"mostCommonMood,omitempty"`
	TotalFormatted   string `json:"totalFormatted"`
	AverageFormatted string `json:"averageFormatted"`
}

func TotalTime(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.TimeSpent
	}
	return total
}

// AverageSession rounds to the nearest minute and is zero for no entries.
func AverageSession(entries []Entry) int {
	if len(entries) == 0 {
		return 0
	}
	return int(math.Round(float64(TotalTime(entries)) / float64(len(entries))))
}

// MostCommonMood returns the most frequent mood. Ties go to the mood declared
// first in AllMoods. ok is false when there are no entries.
func MostCommonMood(entries []Entry) (mood Mood, ok bool) {
	if len(entries) == 0 {
		return "", false
	}
	counts := make(map[Mood]int, len(allMoods))
	for _, e := range entries {
		counts[e.Mood]++
	}
	best := -1
	for _, m := range allMoods {
		if counts[m] > best {
			best = counts[m]
			mood = m
		}
	}
	if best == 0 {
		// only unknown moods were recorded
		return "", false
	}
	return mood, true
}

// FormatMinutes renders minutes as "Hh Mm", dropping the hour part when zero.
func FormatMinutes(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

func ComputeStats(entries []Entry) Stats {
	s := Stats{
		EntryCount:     len(entries),
		TotalMinutes:   TotalTime(entries),
		AverageMinutes: AverageSession(entries),
	}
	if m, ok := MostCommonMood(entries); ok {
		s.MostCommonMood = &m
	}
	s.TotalFormatted = FormatMinutes(s.TotalMinutes)
	s.AverageFormatted = FormatMinutes(s.AverageMinutes)
	return s
}
