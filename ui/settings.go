package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Quill/config"
	"github.com/dixieflatline76/Quill/pkg/ui/setting"
)

// fontFamilyOptions is the curated family list offered by the settings
// dialog. The currently configured family is always selectable even when it
// is not in the list.
var fontFamilyOptions = []string{
	"Arial",
	"Courier New",
	"Georgia",
	"Helvetica",
	"Times New Roman",
	"Verdana",
}

// fontFamilies returns the selectable families, including current.
func fontFamilies(current string) []string {
	for _, f := range fontFamilyOptions {
		if f == current {
			return fontFamilyOptions
		}
	}
	return append([]string{current}, fontFamilyOptions...)
}

// fontSizeOptions returns every selectable size as a string.
func fontSizeOptions() []string {
	sizes := make([]string, 0, maxFontSize-minFontSize+1)
	for s := minFontSize; s <= maxFontSize; s++ {
		sizes = append(sizes, strconv.Itoa(s))
	}
	return sizes
}

// showSettingsWindow creates and displays the settings window with the
// Themes, Fonts and Debug tabs. Nothing is persisted until Save Settings is
// pressed; Save applies the pending changes, persists everything and closes
// the window.
func (qa *App) showSettingsWindow() {
	settingsWindow := qa.app.NewWindow(fmt.Sprintf("%s Settings", config.AppName))
	settingsWindow.Resize(fyne.NewSize(500, 420))
	settingsWindow.CenterOnScreen()

	draft := qa.prefs
	sm := NewSettingsManager(settingsWindow, func() {
		qa.applySettings(draft)
		settingsWindow.Close()
	})

	// Themes tab
	themesTab := container.NewVBox()
	themesTab.Add(sm.CreateSectionTitleLabel("Theme"))
	sm.CreateRadioSetting(&setting.RadioConfig{
		Name:         "Theme",
		Options:      setting.StringOptions(config.GetThemeModes()),
		InitialValue: int(qa.prefs.Theme),
		ApplyFunc: func(i int) {
			draft.Theme = config.ThemeMode(i)
		},
	}, themesTab)

	// Fonts tab
	fontsTab := container.NewVBox()
	fontsTab.Add(sm.CreateSectionTitleLabel("Font Settings"))

	preview := canvas.NewText("This is a preview of the selected font and size.", theme.Color(theme.ColorNameForeground))
	preview.TextSize = float32(qa.prefs.FontSize)

	families := fontFamilies(qa.prefs.FontName)
	sm.CreateSelectSetting(&setting.SelectConfig{
		Name:         "Font",
		Options:      families,
		InitialValue: indexOf(families, qa.prefs.FontName),
		Label:        sm.CreateSettingTitleLabel("Font:"),
		ApplyFunc: func(i int) {
			draft.FontName = families[i]
		},
	}, fontsTab)

	sizes := fontSizeOptions()
	sizeIdx := qa.prefs.FontSize - minFontSize
	if sizeIdx < 0 || sizeIdx >= len(sizes) {
		sizeIdx = config.DefaultFontSize - minFontSize
	}
	sm.CreateSelectSetting(&setting.SelectConfig{
		Name:         "Size",
		Options:      sizes,
		InitialValue: sizeIdx,
		Label:        sm.CreateSettingTitleLabel("Size:"),
		OnChanged: func(_ string, i int) {
			preview.TextSize = float32(minFontSize + i)
			preview.Refresh()
		},
		ApplyFunc: func(i int) {
			draft.FontSize = minFontSize + i
		},
	}, fontsTab)

	fontsTab.Add(sm.CreateSettingTitleLabel("Preview:"))
	fontsTab.Add(preview)

	// Debug tab
	debugTab := container.NewVBox()
	debugTab.Add(sm.CreateSectionTitleLabel("Debug Settings"))
	sm.CreateBoolSetting(&setting.BoolConfig{
		Name:         "Show Debug Console",
		InitialValue: qa.prefs.ShowDebug,
		ApplyFunc: func(b bool) {
			draft.ShowDebug = b
		},
	}, debugTab)

	tabs := container.NewAppTabs(
		container.NewTabItem("Themes", themesTab),
		container.NewTabItem("Fonts", fontsTab),
		container.NewTabItem("Debug", debugTab),
	)

	closeButton := widget.NewButton("Close", func() {
		settingsWindow.Close()
	})
	bottom := container.NewHBox(layout.NewSpacer(), closeButton, sm.GetSaveSettingsButton())

	settingsWindow.SetContent(container.NewBorder(nil, bottom, nil, nil, tabs))
	settingsWindow.Show()
}

// applySettings takes the saved draft into effect: theme and font are applied
// immediately, the debug console is toggled, and the whole record is
// persisted the way the close handler would.
func (qa *App) applySettings(draft config.Preferences) {
	debugChanged := draft.ShowDebug != qa.prefs.ShowDebug

	qa.prefs.FontName = draft.FontName
	qa.prefs.FontSize = draft.FontSize
	qa.prefs.Theme = draft.Theme
	qa.prefs.ShowDebug = draft.ShowDebug

	qa.app.Settings().SetTheme(newEditorTheme(qa.prefs))

	if debugChanged {
		qa.console.SetEnabled(qa.prefs.ShowDebug)
		qa.rebuildContent()
		if qa.prefs.ShowDebug {
			qa.console.Logf("Debug console enabled")
		}
	}

	qa.console.Logf("Settings saved: theme=%s font=%s size=%d debug=%v",
		qa.prefs.Theme, qa.prefs.FontName, qa.prefs.FontSize, qa.prefs.ShowDebug)
	qa.persist()
}
