package insights

import (
	"fmt"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
)

type Tone string

const (
	ToneGreen  Tone = "green"
	ToneYellow Tone = "yellow"
	ToneRed    Tone = "red"
)

// Classes returns the badge colour classes the front-ends use for a tone.
func (t Tone) Classes() string {
	return fmt.Sprintf("bg-%s-100 text-%s-800", t, t)
}

type Badge struct {
	Label   string `json:"label"`
	Tone    Tone   `json:"tone"`
	Classes string `json:"classes"`
}

func newBadge(label string, tone Tone) Badge {
	return Badge{Label: label, Tone: tone, Classes: tone.Classes()}
}

// SeverityBadge: severe is red, moderate yellow, everything else (including
// unknown or empty levels) green and labelled mild when empty.
func SeverityBadge(level domain.SeverityLevel) Badge {
	label := string(level)
	if label == "" {
		label = string(domain.SeverityMild)
	}
	switch level {
	case domain.SeveritySevere:
		return newBadge(label, ToneRed)
	case domain.SeverityModerate:
		return newBadge(label, ToneYellow)
	default:
		return newBadge(label, ToneGreen)
	}
}

// ScoreTone colours a technique score: green from 80, yellow from 60, red below.
func ScoreTone(score int) Tone {
	switch {
	case score >= 80:
		return ToneGreen
	case score >= 60:
		return ToneYellow
	default:
		return ToneRed
	}
}

// ScoreBadge renders score as a percentage badge in its ScoreTone colour.
func ScoreBadge(score int) Badge {
	return newBadge(fmt.Sprintf("%d%%", score), ScoreTone(score))
}

// TechniqueTone colours the score bar on the technique feedback card, which uses
// a stricter green threshold than the activity badge.
func TechniqueTone(score int) Tone {
	switch {
	case score >= 85:
		return ToneGreen
	case score >= 60:
		return ToneYellow
	default:
		return ToneRed
	}
}
