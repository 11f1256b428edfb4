package views

import (
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/insights"
)

type TriageInfo struct {
	Level       domain.TriageLevel `json:"level"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Tone        insights.Tone      `json:"tone"`
}

func TriageFor(level domain.TriageLevel) TriageInfo {
	switch level {
	case domain.TriageUrgent:
		return TriageInfo{Level: level, Title: "Seek Urgent Care", Description: "Consider immediate medical attention", Tone: insights.ToneRed}
	case domain.TriagePrimaryCare:
		return TriageInfo{Level: level, Title: "Contact Primary Care", Description: "Schedule appointment with your doctor", Tone: insights.ToneYellow}
	default:
		return TriageInfo{Level: domain.TriageSelfCare, Title: "Self-Care Appropriate", Description: "Monitor symptoms and follow care plan", Tone: insights.ToneGreen}
	}
}

// SymptomResult is returned after a successful check. Input is always empty so
// the client clears its text field.
type SymptomResult struct {
	State      AppState            `json:"state"`
	Input      string              `json:"input"`
	Entry      domain.SymptomEntry `json:"entry"`
	Badge      insights.Badge      `json:"badge"`
	Triage     TriageInfo          `json:"triage"`
	Keywords   []string            `json:"keywords"`
	Disclaimer string              `json:"disclaimer"`
}

func BuildSymptomResult(state AppState, entry domain.SymptomEntry) SymptomResult {
	return SymptomResult{
		State:      state,
		Input:      "",
		Entry:      entry,
		Badge:      insights.SeverityBadge(entry.SeverityLevel),
		Triage:     TriageFor(entry.TriageLevel),
		Keywords:   append([]string{}, entry.ExtractedKeywords...),
		Disclaimer: ResultDisclaimer,
	}
}

type SymptomRow struct {
	Entry domain.SymptomEntry `json:"entry"`
	Badge insights.Badge      `json:"badge"`
}

type SymptomList struct {
	State      AppState     `json:"state"`
	Disclaimer string       `json:"disclaimer"`
	Entries    []SymptomRow `json:"entries"`
}

func BuildSymptomList(state AppState, entries []domain.SymptomEntry) SymptomList {
	rows := make([]SymptomRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, SymptomRow{Entry: e, Badge: insights.SeverityBadge(e.SeverityLevel)})
	}
	return SymptomList{State: state, Disclaimer: PageDisclaimer(TabSymptoms), Entries: rows}
}
