package health

// JSON schemas handed to the narrative collaborator. They are written for strict
// structured output: every property is required and no extra keys are allowed.

func stringArray() map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
}

func object(props map[string]any, required ...string) map[string]any {
	req := make([]any, 0, len(required))
	for _, r := range required {
		req = append(req, r)
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             req,
		"additionalProperties": false,
	}
}

// RiskAssessmentSchema describes the fields a forecast call must return.
func RiskAssessmentSchema() map[string]any {
	return object(map[string]any{
		"risk_level":           map[string]any{"type": "string", "enum": enumStrings(RiskLevels)},
		"confidence_score":     map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		"contributing_factors": stringArray(),
		"recommendations":      stringArray(),
	}, "risk_level", "confidence_score", "contributing_factors", "recommendations")
}

// SymptomAnalysisSchema is the classification returned for a free-text description.
func SymptomAnalysisSchema() map[string]any {
	return object(map[string]any{
		"severity_level": map[string]any{"type": "string", "enum": enumStrings(SeverityLevels)},
		"triage_level":   map[string]any{"type": "string", "enum": enumStrings(TriageLevels)},
		"keywords":       stringArray(),
		"response":       map[string]any{"type": "string"},
	}, "severity_level", "triage_level", "keywords", "response")
}

// EnvironmentSchema is used when the risk forecast asks for live local conditions.
func EnvironmentSchema() map[string]any {
	return object(map[string]any{
		"pollen":  map[string]any{"type": "number"},
		"aqi":     map[string]any{"type": "number"},
		"weather": map[string]any{"type": "string"},
	}, "pollen", "aqi", "weather")
}

// TriggerEnvironmentSchema adds temperature for the triggers page.
func TriggerEnvironmentSchema() map[string]any {
	return object(map[string]any{
		"pollen":      map[string]any{"type": "number"},
		"aqi":         map[string]any{"type": "number"},
		"temperature": map[string]any{"type": "number"},
		"weather":     map[string]any{"type": "string"},
	}, "pollen", "aqi", "temperature", "weather")
}
