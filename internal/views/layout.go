package views

const (
	AppName = "AeroSense"
	Tagline = "AI Health Companion"

	// HeaderDisclaimer is sent on every response as X-Medical-Disclaimer.
	HeaderDisclaimer = "Educational purposes only. Not a substitute for professional medical advice."
	BannerDisclaimer = "Educational companion only. Not a substitute for professional medical advice."
)

var footerLines = []string{
	"Always consult healthcare professionals for medical decisions.",
	"This app provides educational information only.",
}

var pageDisclaimers = map[Tab]string{
	TabHome:      BannerDisclaimer,
	TabSymptoms:  "Important: This tool provides educational information only. Always consult healthcare professionals for medical concerns, diagnosis, or treatment decisions.",
	TabTriggers:  "Environmental readings come from public sources and may be delayed. They are shown for awareness, not as medical guidance.",
	TabRisk:      "This forecast is an educational estimate, not a medical prediction. Use it to be more mindful of your condition.",
	TabTechnique: "This feature provides educational feedback only and is not a substitute for training from a healthcare professional.",
	TabSafety:    "AeroSense is an educational tool only. It does not provide medical diagnosis, treatment recommendations, or replace professional healthcare advice. Always consult qualified healthcare providers for medical decisions.",
}

// ResultDisclaimer follows every symptom analysis.
const ResultDisclaimer = "Remember: This analysis is for educational purposes only. If you have concerns about your health, please consult with a healthcare professional."

func PageDisclaimer(tab Tab) string {
	if d, ok := pageDisclaimers[tab]; ok {
		return d
	}
	return BannerDisclaimer
}

type NavItem struct {
	Name   string `json:"name"`
	Tab    Tab    `json:"tab"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

var navigation = []NavItem{
	{Name: "Home", Tab: TabHome, Path: "/"},
	{Name: "Symptom Check", Tab: TabSymptoms, Path: "/symptom-check"},
	{Name: "Triggers", Tab: TabTriggers, Path: "/triggers"},
	{Name: "Risk", Tab: TabRisk, Path: "/risk-forecast"},
	{Name: "Technique", Tab: TabTechnique, Path: "/inhaler-technique"},
	{Name: "Safety", Tab: TabSafety, Path: "/safety"},
}

type Layout struct {
	State      AppState  `json:"state"`
	AppName    string    `json:"app_name"`
	Tagline    string    `json:"tagline"`
	Banner     string    `json:"banner"`
	Navigation []NavItem `json:"navigation"`
	Footer     []string  `json:"footer"`
}

func BuildLayout(state AppState) Layout {
	nav := make([]NavItem, len(navigation))
	for i, item := range navigation {
		item.Active = item.Tab == state.ActiveTab
		nav[i] = item
	}
	return Layout{
		State:      state,
		AppName:    AppName,
		Tagline:    Tagline,
		Banner:     BannerDisclaimer,
		Navigation: nav,
		Footer:     append([]string{}, footerLines...),
	}
}
