package views

type EmergencyContact struct {
	Service     string `json:"service"`
	Number      string `json:"number"`
	Description string `json:"description"`
}

type CareTier struct {
	Urgency  string   `json:"urgency"`
	Tone     string   `json:"tone"`
	Symptoms []string `json:"symptoms"`
}

type SafetyPage struct {
	State             AppState           `json:"state"`
	Title             string             `json:"title"`
	Disclaimer        string             `json:"disclaimer"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts"`
	WhenToSeekCare    []CareTier         `json:"when_to_seek_care"`
	Can               []string           `json:"can"`
	Cannot            []string           `json:"cannot"`
	DataWeCollect     []string           `json:"data_we_collect"`
	YourRights        []string           `json:"your_rights"`
	Support           []string           `json:"support"`
}

func BuildSafety(state AppState) SafetyPage {
	return SafetyPage{
		State:      state,
		Title:      "Safety & Guidelines",
		Disclaimer: PageDisclaimer(TabSafety),
		EmergencyContacts: []EmergencyContact{
			{Service: "Emergency Services", Number: "911", Description: "Life-threatening emergencies"},
			{Service: "Poison Control", Number: "1-800-222-1222", Description: "Poisoning emergencies"},
			{Service: "Crisis Text Line", Number: "Text HOME to 741741", Description: "Mental health support"},
		},
		WhenToSeekCare: []CareTier{
			{
				Urgency: "Emergency (Call 911)",
				Tone:    "red",
				Symptoms: []string{
					"Severe difficulty breathing",
					"Unable to speak in full sentences",
					"Bluish lips or face",
					"Chest pain with breathing problems",
					"Fainting or loss of consciousness",
				},
			},
			{
				Urgency: "Urgent Care (Same Day)",
				Tone:    "yellow",
				Symptoms: []string{
					"Worsening breathing despite medications",
					"Persistent cough with fever",
					"Wheezing that doesn't improve with rescue inhaler",
					"Significant change in symptom patterns",
				},
			},
			{
				Urgency: "Primary Care (Schedule Appointment)",
				Tone:    "green",
				Symptoms: []string{
					"Mild breathing changes",
					"Questions about medications",
					"Routine symptom management",
					"Preventive care and planning",
				},
			},
		},
		Can: []string{
			"Provide educational information about symptoms",
			"Track symptom patterns over time",
			"Show environmental factor correlations",
			"Offer inhaler technique guidance",
			"Generate risk awareness insights",
			"Connect you with educational resources",
		},
		Cannot: []string{
			"Diagnose medical conditions",
			"Prescribe medications",
			"Replace professional medical advice",
			"Provide emergency medical care",
			"Make treatment decisions for you",
			"Act as your healthcare provider",
		},
		DataWeCollect: []string{
			"Symptom descriptions you provide",
			"Environmental data (public sources)",
			"Inhaler technique assessment results",
			"App usage patterns",
		},
		YourRights: []string{
			"Your data is encrypted and secure",
			"You control what information you share",
			"You can delete your data anytime",
			"We never sell personal information",
		},
		Support: []string{
			"Use the feedback button in the app",
			"Contact your healthcare provider for medical questions",
			"Visit our help center for technical support",
		},
	}
}
