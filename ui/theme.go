package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/dixieflatline76/Quill/config"
)

// editorTheme renders the Dark and Light palettes of the editor and carries
// the user's font family and size on top of the stock Fyne theme.
type editorTheme struct {
	mode     config.ThemeMode
	fontSize float32
	font     fyne.Resource // resolved family file, nil means toolkit default
}

// newEditorTheme builds a theme from the loaded preferences. Font family
// resolution is best effort; an unresolvable family falls back to the
// toolkit default.
func newEditorTheme(p config.Preferences) *editorTheme {
	return &editorTheme{
		mode:     p.Theme,
		fontSize: float32(p.FontSize),
		font:     resolveFontResource(p.FontName),
	}
}

// effectiveMode maps the stored mode to a concrete palette. ThemeSystem
// carries no OS theme detection and resolves to the Dark treatment. Keep
// this mapping for compatibility with stores written by earlier versions.
func (t *editorTheme) effectiveMode() config.ThemeMode {
	if t.mode == config.ThemeSystem {
		return config.ThemeDark
	}
	return t.mode
}

// Palette colors for the Dark and Light treatments.
var (
	darkEditorBg  = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	darkChromeBg  = color.NRGBA{R: 0x25, G: 0x25, B: 0x25, A: 0xff}
	darkButtonBg  = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	darkHoverBg   = color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	lightEditorBg = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	lightChromeBg = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	lightButtonBg = color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	lightHoverBg  = color.NRGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	selectionBlue = color.NRGBA{R: 0x00, G: 0x78, B: 0xd7, A: 0xff}
)

// Color implements fyne.Theme.
func (t *editorTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if t.effectiveMode() == config.ThemeLight {
		switch name {
		case theme.ColorNameBackground, theme.ColorNameInputBackground:
			return lightEditorBg
		case theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
			return lightChromeBg
		case theme.ColorNameButton:
			return lightButtonBg
		case theme.ColorNameHover:
			return lightHoverBg
		case theme.ColorNameForeground:
			return color.NRGBA{A: 0xff}
		case theme.ColorNamePrimary, theme.ColorNameSelection, theme.ColorNameFocus:
			return selectionBlue
		}
		return theme.DefaultTheme().Color(name, theme.VariantLight)
	}

	switch name {
	case theme.ColorNameBackground, theme.ColorNameInputBackground:
		return darkEditorBg
	case theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return darkChromeBg
	case theme.ColorNameButton:
		return darkButtonBg
	case theme.ColorNameHover:
		return darkHoverBg
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	case theme.ColorNamePrimary, theme.ColorNameSelection, theme.ColorNameFocus:
		return selectionBlue
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font implements fyne.Theme. Monospace text keeps the toolkit font so the
// debug console stays readable regardless of the editor family.
func (t *editorTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.font != nil && !style.Monospace {
		return t.font
	}
	return theme.DefaultTheme().Font(style)
}

// Icon implements fyne.Theme.
func (t *editorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size implements fyne.Theme, overriding the body text size with the
// configured font size.
func (t *editorTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return t.fontSize
	}
	return theme.DefaultTheme().Size(name)
}
