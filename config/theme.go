package config

import "fmt"

// ThemeMode represents the application color scheme.
type ThemeMode int

// ThemeMode constants
const (
	ThemeSystem ThemeMode = iota
	ThemeDark
	ThemeLight
)

// String returns the string representation of a ThemeMode. This is also the
// form persisted in the preferences store.
func (t ThemeMode) String() string {
	switch t {
	case ThemeSystem:
		return "System"
	case ThemeDark:
		return "Dark"
	case ThemeLight:
		return "Light"
	default:
		return "Unknown"
	}
}

// ParseThemeMode converts a stored string into a ThemeMode. The backing store
// is user editable, so anything unrecognized falls back to Dark instead of
// failing.
func ParseThemeMode(s string) ThemeMode {
	switch s {
	case "System":
		return ThemeSystem
	case "Dark":
		return ThemeDark
	case "Light":
		return ThemeLight
	default:
		return ThemeDark
	}
}

// GetThemeModes returns all selectable theme modes as fmt.Stringer for use in
// the settings UI.
func GetThemeModes() []fmt.Stringer {
	return []fmt.Stringer{ThemeSystem, ThemeDark, ThemeLight}
}
