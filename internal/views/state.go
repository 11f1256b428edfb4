package views

import "strings"

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type Tab string

const (
	TabHome      Tab = "home"
	TabSymptoms  Tab = "symptoms"
	TabTriggers  Tab = "triggers"
	TabRisk      Tab = "risk"
	TabTechnique Tab = "technique"
	TabSafety    Tab = "safety"
)

// AppState is the UI state the front-ends used to keep globally. It travels with
// every request and into every page view.
type AppState struct {
	Theme     Theme `json:"theme"`
	ActiveTab Tab   `json:"active_tab"`
}

func DefaultAppState() AppState {
	return AppState{Theme: ThemeLight, ActiveTab: TabHome}
}

// ParseTheme accepts light, dark or system in any case; anything else is light.
func ParseTheme(s string) Theme {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return t
	default:
		return ThemeLight
	}
}

func (s AppState) WithTab(tab Tab) AppState {
	s.ActiveTab = tab
	return s
}

// ParseTab maps a tab name to a Tab, defaulting to home.
func ParseTab(s string) Tab {
	switch t := Tab(strings.ToLower(strings.TrimSpace(s))); t {
	case TabHome, TabSymptoms, TabTriggers, TabRisk, TabTechnique, TabSafety:
		return t
	default:
		return TabHome
	}
}
