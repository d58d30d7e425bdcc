package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"

	"github.com/dixieflatline76/Quill/config"
)

func themeForMode(mode config.ThemeMode) *editorTheme {
	p := config.DefaultPreferences()
	p.Theme = mode
	return newEditorTheme(p)
}

// comparedColorNames covers every name the palettes override.
var comparedColorNames = []fyne.ThemeColorName{
	theme.ColorNameBackground,
	theme.ColorNameInputBackground,
	theme.ColorNameMenuBackground,
	theme.ColorNameOverlayBackground,
	theme.ColorNameButton,
	theme.ColorNameHover,
	theme.ColorNameForeground,
	theme.ColorNamePrimary,
	theme.ColorNameSelection,
	theme.ColorNameFocus,
}

// The System mode carries no OS detection and must render exactly like Dark.
func TestSystemThemeResolvesToDark(t *testing.T) {
	system := themeForMode(config.ThemeSystem)
	dark := themeForMode(config.ThemeDark)

	for _, name := range comparedColorNames {
		assert.Equal(t,
			dark.Color(name, theme.VariantDark),
			system.Color(name, theme.VariantDark),
			"color %s should match the Dark treatment", name)
	}
}

func TestDarkAndLightPalettesDiffer(t *testing.T) {
	dark := themeForMode(config.ThemeDark)
	light := themeForMode(config.ThemeLight)

	assert.NotEqual(t,
		dark.Color(theme.ColorNameBackground, theme.VariantDark),
		light.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.NotEqual(t,
		dark.Color(theme.ColorNameForeground, theme.VariantDark),
		light.Color(theme.ColorNameForeground, theme.VariantLight))

	// The selection highlight is shared between both palettes.
	assert.Equal(t,
		dark.Color(theme.ColorNameSelection, theme.VariantDark),
		light.Color(theme.ColorNameSelection, theme.VariantLight))
}

func TestPaletteColors(t *testing.T) {
	dark := themeForMode(config.ThemeDark)
	assert.Equal(t, darkEditorBg, dark.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t, darkChromeBg, dark.Color(theme.ColorNameMenuBackground, theme.VariantDark))
	assert.Equal(t, selectionBlue, dark.Color(theme.ColorNameSelection, theme.VariantDark))

	light := themeForMode(config.ThemeLight)
	assert.Equal(t, lightEditorBg, light.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, lightChromeBg, light.Color(theme.ColorNameOverlayBackground, theme.VariantLight))
}

func TestFontSizeOverride(t *testing.T) {
	p := config.DefaultPreferences()
	p.FontSize = 24
	et := newEditorTheme(p)

	assert.Equal(t, float32(24), et.Size(theme.SizeNameText))
	// Other sizes pass through to the stock theme.
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNamePadding), et.Size(theme.SizeNamePadding))
}

func TestFontFallsBackToDefault(t *testing.T) {
	et := &editorTheme{mode: config.ThemeDark, fontSize: 16}

	assert.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{}), et.Font(fyne.TextStyle{}))
	assert.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{Monospace: true}), et.Font(fyne.TextStyle{Monospace: true}))
}
