package models

// Theme is the UI colour scheme stored with the settings.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings holds the user's display preferences.
type Settings struct {
	WelcomeMessage string `json:"welcomeMessage"`
	Currency       string `json:"currency"`
	DateFormat     string `json:"dateFormat"`
	Theme          Theme  `json:"theme"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		WelcomeMessage: "Welcome to your Personal Finance Tracker!",
		Currency:       "INR",
		DateFormat:     "dd MMM yyyy",
		Theme:          ThemeLight,
	}
}

// MergeOver returns defaults overwritten by the non-empty fields of s.
func (s Settings) MergeOver(defaults Settings) Settings {
	out := defaults
	if s.WelcomeMessage != "" {
		out.WelcomeMessage = s.WelcomeMessage
	}
	if s.Currency != "" {
		out.Currency = s.Currency
	}
	if s.DateFormat != "" {
		out.DateFormat = s.DateFormat
	}
	if s.Theme != "" {
		out.Theme = s.Theme
	}
	return out
}
