package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/dixieflatline76/Quill/config"
)

func newShellForTest(t *testing.T) (*App, *config.Store) {
	t.Helper()
	a := test.NewApp()
	store := config.NewStore(a.Preferences())
	return New(a, store, store.Load()), store
}

func TestShellFreshInstall(t *testing.T) {
	qa, _ := newShellForTest(t)

	p := qa.Preferences()
	assert.Equal(t, "Arial", p.FontName)
	assert.Equal(t, 16, p.FontSize)
	assert.Equal(t, config.ThemeDark, p.Theme)
	assert.Equal(t, "", qa.editor.Text)
	assert.False(t, p.ShowDebug)
}

// The close handler captures the buffer unconditionally; a relaunch gets the
// same text back.
func TestShellCloseRestoresText(t *testing.T) {
	a := test.NewApp()
	store := config.NewStore(a.Preferences())

	qa := New(a, store, store.Load())
	qa.editor.SetText("hello")
	qa.persist()

	relaunched := New(a, config.NewStore(a.Preferences()), store.Load())
	assert.Equal(t, "hello", relaunched.editor.Text)

	loaded := store.Load()
	assert.Equal(t, "hello", loaded.TextContent)
	assert.NotNil(t, loaded.WindowGeometry)
	assert.NotNil(t, loaded.WindowState)
}

func TestShellApplySettings(t *testing.T) {
	qa, store := newShellForTest(t)

	draft := qa.Preferences()
	draft.Theme = config.ThemeLight
	draft.FontName = "Georgia"
	draft.FontSize = 24
	draft.ShowDebug = true
	qa.applySettings(draft)

	p := qa.Preferences()
	assert.Equal(t, config.ThemeLight, p.Theme)
	assert.Equal(t, "Georgia", p.FontName)
	assert.Equal(t, 24, p.FontSize)
	assert.True(t, p.ShowDebug)
	assert.True(t, qa.console.Enabled())
	assert.NotNil(t, qa.split)

	// Settings save persists immediately, not just on close
	loaded := store.Load()
	assert.Equal(t, config.ThemeLight, loaded.Theme)
	assert.Equal(t, "Georgia", loaded.FontName)
	assert.Equal(t, 24, loaded.FontSize)
	assert.True(t, loaded.ShowDebug)

	// Toggling debug back off undocks the console
	draft = qa.Preferences()
	draft.ShowDebug = false
	qa.applySettings(draft)
	assert.False(t, qa.console.Enabled())
	assert.Nil(t, qa.split)
	assert.False(t, store.Load().ShowDebug)
}

func TestShellDebugConsoleStartupLogs(t *testing.T) {
	a := test.NewApp()
	store := config.NewStore(a.Preferences())

	p := store.Load()
	p.ShowDebug = true
	store.Save(p)

	qa := New(a, store, store.Load())

	lines := qa.console.Lines()
	assert.NotEmpty(t, lines)
	joined := ""
	for _, l := range lines {
		joined += l + "\n"
	}
	assert.Contains(t, joined, "Application started")
	assert.Contains(t, joined, "Current theme: Dark")
}

func TestFontSizeOptionsRange(t *testing.T) {
	sizes := fontSizeOptions()
	assert.Equal(t, "8", sizes[0])
	assert.Equal(t, "72", sizes[len(sizes)-1])
	assert.Len(t, sizes, 65)
}

func TestFontFamiliesIncludesCurrent(t *testing.T) {
	families := fontFamilies("Comic Sans MS")
	assert.Equal(t, "Comic Sans MS", families[0])

	// A family already in the list is not duplicated
	assert.Equal(t, fontFamilyOptions, fontFamilies("Arial"))
}
