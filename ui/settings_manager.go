package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Quill/pkg/ui/setting"
)

// SettingsManager handles UI elements for settings. Widgets register a
// pending-change callback when they diverge from their initial value and
// unregister it when they return to it; the Save button is enabled exactly
// while callbacks are pending and runs them all on press.
type SettingsManager struct {
	chgPrefsCallbacks map[string]func()
	saveButton        *widget.Button
	prefsWindow       fyne.Window
	onSaved           func()
}

// NewSettingsManager creates a new SettingsManager. onSaved runs after all
// pending changes have been applied (the shell uses it to persist and close
// the dialog).
func NewSettingsManager(window fyne.Window, onSaved func()) setting.SettingsManager {
	sm := &SettingsManager{
		chgPrefsCallbacks: make(map[string]func()),
		prefsWindow:       window,
		onSaved:           onSaved,
	}
	sm.saveButton = createSaveButton(sm)
	return sm
}

// createSaveButton creates and sets up the Save Settings button.
func createSaveButton(sm *SettingsManager) *widget.Button {
	saveButton := widget.NewButton("Save Settings", func() {
		for _, callback := range sm.chgPrefsCallbacks {
			callback()
		}
		sm.chgPrefsCallbacks = make(map[string]func())
		if sm.onSaved != nil {
			sm.onSaved()
		}
	})
	saveButton.Disable()
	return saveButton
}

// checkAndEnableSave enables the save button while changes are pending.
func (sm *SettingsManager) checkAndEnableSave() {
	if len(sm.chgPrefsCallbacks) > 0 {
		sm.saveButton.Enable()
	} else {
		sm.saveButton.Disable()
	}
	sm.saveButton.Refresh()
}

// GetSaveSettingsButton returns the Save Settings button to be used in the UI.
func (sm *SettingsManager) GetSaveSettingsButton() *widget.Button {
	return sm.saveButton
}

// CreateRadioSetting creates a reusable radio group setting.
func (sm *SettingsManager) CreateRadioSetting(cfg *setting.RadioConfig, parent *fyne.Container) *widget.RadioGroup {
	radio := widget.NewRadioGroup(cfg.Options, func(selected string) {})
	radio.SetSelected(cfg.Options[cfg.InitialValue])

	if cfg.Label != nil {
		parent.Add(cfg.Label)
	}
	parent.Add(radio)

	radio.OnChanged = func(selected string) {
		selectedIndex := indexOf(cfg.Options, selected)
		if selectedIndex < 0 {
			return // Deselection, keep the pending state as is
		}
		if selectedIndex != cfg.InitialValue {
			sm.SetSettingChangedCallback(cfg.Name, func() {
				cfg.ApplyFunc(selectedIndex)
			})
		} else {
			sm.RemoveSettingChangedCallback(cfg.Name)
		}
		if cfg.OnChanged != nil {
			cfg.OnChanged(selected, selectedIndex)
		}
		sm.checkAndEnableSave()
	}
	return radio
}

// CreateSelectSetting creates a reusable select widget setting.
func (sm *SettingsManager) CreateSelectSetting(cfg *setting.SelectConfig, parent *fyne.Container) *widget.Select {
	selectWidget := widget.NewSelect(cfg.Options, func(selected string) {})
	selectWidget.SetSelectedIndex(cfg.InitialValue)

	if cfg.Label != nil {
		parent.Add(NewSplitRow(cfg.Label, selectWidget, SplitProportion.OneThird))
	} else {
		parent.Add(selectWidget)
	}

	selectWidget.OnChanged = func(s string) {
		selectedIndex := selectWidget.SelectedIndex()
		if selectedIndex != cfg.InitialValue {
			sm.SetSettingChangedCallback(cfg.Name, func() {
				cfg.ApplyFunc(selectedIndex)
			})
		} else {
			sm.RemoveSettingChangedCallback(cfg.Name)
		}
		if cfg.OnChanged != nil {
			cfg.OnChanged(s, selectedIndex)
		}
		sm.checkAndEnableSave()
	}
	return selectWidget
}

// CreateBoolSetting creates a reusable boolean check setting.
func (sm *SettingsManager) CreateBoolSetting(cfg *setting.BoolConfig, parent *fyne.Container) *widget.Check {
	check := widget.NewCheck(cfg.Name, func(b bool) {})
	check.SetChecked(cfg.InitialValue)

	if cfg.Label != nil {
		parent.Add(NewSplitRow(cfg.Label, check, SplitProportion.OneThird))
	} else {
		parent.Add(check)
	}

	check.OnChanged = func(b bool) {
		if b != cfg.InitialValue {
			sm.SetSettingChangedCallback(cfg.Name, func() {
				cfg.ApplyFunc(b)
			})
		} else {
			sm.RemoveSettingChangedCallback(cfg.Name)
		}
		if cfg.OnChanged != nil {
			cfg.OnChanged(b)
		}
		sm.checkAndEnableSave()
	}
	return check
}

// SetSettingChangedCallback sets a callback function to be called when settings are saved.
func (sm *SettingsManager) SetSettingChangedCallback(settingName string, callback func()) {
	sm.chgPrefsCallbacks[settingName] = callback
}

// RemoveSettingChangedCallback removes a callback function associated with a specific setting.
func (sm *SettingsManager) RemoveSettingChangedCallback(settingName string) {
	delete(sm.chgPrefsCallbacks, settingName)
}

// GetSettingsWindow returns the window associated with the SettingsManager.
func (sm *SettingsManager) GetSettingsWindow() fyne.Window {
	return sm.prefsWindow
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return -1
}
