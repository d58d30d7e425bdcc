package setting

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// SettingsHelper is the interface that must be implemented by all settings helpers.
type SettingsHelper interface {
	CreateSectionTitleLabel(desc string) *widget.Label           // Creates a section title label.
	CreateSettingTitleLabel(desc string) *widget.Label           // Creates a setting title label.
	CreateSettingDescriptionLabel(desc string) fyne.CanvasObject // Creates a setting description label.
}

// RadioConfig holds the configuration for a generic radio group widget.
type RadioConfig struct {
	Name         string
	Options      []string
	InitialValue int
	Label        fyne.CanvasObject
	OnChanged    func(string, int)
	ApplyFunc    func(int)
}

// SelectConfig holds the configuration for a generic select widget.
type SelectConfig struct {
	Name         string
	Options      []string
	InitialValue int
	Label        fyne.CanvasObject
	OnChanged    func(string, int)
	ApplyFunc    func(int)
}

// BoolConfig holds configuration for a generic boolean check widget.
type BoolConfig struct {
	Name         string
	InitialValue bool
	Label        fyne.CanvasObject
	OnChanged    func(bool)
	ApplyFunc    func(bool)
}

// StringOptions converts a slice of fmt.Stringer to a slice of strings.
func StringOptions(options []fmt.Stringer) []string {
	stringOptions := []string{}
	for _, option := range options {
		stringOptions = append(stringOptions, option.String())
	}
	return stringOptions
}

// SettingsManager is an interface for managing settings. It provides methods
// to create the settings widgets and to collect the pending changes behind a
// single save action.
type SettingsManager interface {
	SettingsHelper

	CreateRadioSetting(cfg *RadioConfig, parent *fyne.Container) *widget.RadioGroup // Create a radio group setting widget.
	CreateSelectSetting(cfg *SelectConfig, parent *fyne.Container) *widget.Select   // Create a select setting widget.
	CreateBoolSetting(cfg *BoolConfig, parent *fyne.Container) *widget.Check        // Create a boolean setting widget.

	GetSaveSettingsButton() *widget.Button                         // GetSaveSettingsButton returns the Save Settings button to be used in the UI.
	SetSettingChangedCallback(settingName string, callback func()) // Set a callback function to be called when settings are saved.
	RemoveSettingChangedCallback(settingName string)               // Remove a callback function associated with a specific setting.
	GetSettingsWindow() fyne.Window                                // GetSettingsWindow returns the window associated with the SettingsManager.
}
