package domain

import "fmt"

// Theme values accepted by set-theme. "system" defers to the OS preference.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Notifications holds the user's notification delivery preferences.
type Notifications struct {
	Email   bool `json:"email"`
	Desktop bool `json:"desktop"`
	Sound   bool `json:"sound"`
}

// Settings is the application preference document. It is stored as a
// single row and returned whole to the UI.
type Settings struct {
	Theme         string        `json:"theme"`
	Language      string        `json:"language"`
	Notifications Notifications `json:"notifications"`
}

// Default returns the settings used before the user has saved any.
func Default() *Settings {
	return &Settings{
		Theme:    ThemeSystem,
		Language: "en",
		Notifications: Notifications{
			Email:   true,
			Desktop: true,
			Sound:   true,
		},
	}
}

// ValidTheme reports whether theme is one of the accepted values.
func ValidTheme(theme string) bool {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Validate checks the document before it is persisted.
func (s *Settings) Validate() error {
	if !ValidTheme(s.Theme) {
		return fmt.Errorf("invalid theme %q", s.Theme)
	}
	if s.Language == "" {
		return fmt.Errorf("language must not be empty")
	}
	return nil
}
