package promptstyle

import "strings"

const marker = "AEROSENSE_PROMPT_STYLE_V1"

// ApplySystem prepends the shared guidance block to system prompts. Applying it twice is a no-op.
func ApplySystem(system string, mode string) string {
	base := strings.TrimSpace(system)
	if base == "" {
		return base
	}
	if strings.Contains(base, marker) {
		return base
	}
	mode = strings.ToLower(strings.TrimSpace(mode))

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString("\nYou support AeroSense, an educational asthma and allergy companion.")
	b.WriteString("\nYou provide educational information only. You do not diagnose, treat, or prescribe.")
	b.WriteString("\nWhen you address the user, remind them to consult a healthcare professional.")
	b.WriteString("\nUse provided inputs as grounding; do not invent measurements.")
	if mode == "json" {
		b.WriteString("\nReturn a single JSON object that conforms to the schema and contains no extra keys.")
	} else {
		b.WriteString("\nBe concise and patient-friendly.")
	}
	b.WriteString("\n---\n")
	b.WriteString(base)
	return strings.TrimSpace(b.String())
}
