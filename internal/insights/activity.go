package insights

import (
	"fmt"
	"slices"
	"time"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
)

// RecentActivityLimit is how many items the dashboard shows.
const RecentActivityLimit = 5

const summaryRunes = 100

type ActivityType string

const (
	ActivitySymptom    ActivityType = "symptom"
	ActivityAssessment ActivityType = "assessment"
)

type ActivityItem struct {
	Type      ActivityType `json:"type"`
	Data      any          `json:"data"`
	Timestamp time.Time    `json:"timestamp"`
	Title     string       `json:"title"`
	Badge     Badge        `json:"badge"`
	Summary   string       `json:"summary"`
}

// MergeActivity interleaves symptom entries and inhaler assessments newest first
// and keeps at most limit items (limit <= 0 keeps everything). Items with equal
// timestamps keep input order, symptoms ahead of assessments.
func MergeActivity(symptoms []domain.SymptomEntry, assessments []domain.InhalerAssessment, limit int) []ActivityItem {
	items := make([]ActivityItem, 0, len(symptoms)+len(assessments))
	for _, s := range symptoms {
		items = append(items, symptomItem(s))
	}
	for _, a := range assessments {
		items = append(items, assessmentItem(a))
	}
	slices.SortStableFunc(items, func(a, b ActivityItem) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func symptomItem(s domain.SymptomEntry) ActivityItem {
	return ActivityItem{
		Type:      ActivitySymptom,
		Data:      s,
		Timestamp: s.CreatedDate,
		Title:     "Symptom Check",
		Badge:     SeverityBadge(s.SeverityLevel),
		Summary:   Truncate(s.Description, summaryRunes),
	}
}

func assessmentItem(a domain.InhalerAssessment) ActivityItem {
	return ActivityItem{
		Type:      ActivityAssessment,
		Data:      a,
		Timestamp: a.CreatedDate,
		Title:     "Inhaler Assessment",
		Badge:     ScoreBadge(a.TechniqueScore),
		Summary:   fmt.Sprintf("Technique score: %d%% - %d areas for improvement", a.TechniqueScore, len(a.ImprovementAreas)),
	}
}

// Truncate cuts s to n runes and appends "..." when anything was dropped.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
