package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockPreferences implements fyne.Preferences for testing
type MockPreferences struct {
	data map[string]interface{}
}

func NewMockPreferences() *MockPreferences {
	return &MockPreferences{
		data: make(map[string]interface{}),
	}
}

func (m *MockPreferences) Bool(key string) bool {
	val, ok := m.data[key]
	if !ok {
		return false
	}
	return val.(bool)
}

func (m *MockPreferences) BoolWithFallback(key string, fallback bool) bool {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.(bool)
}

func (m *MockPreferences) SetBool(key string, value bool) {
	m.data[key] = value
}

func (m *MockPreferences) Float(key string) float64 {
	val, ok := m.data[key]
	if !ok {
		return 0.0
	}
	return val.(float64)
}

func (m *MockPreferences) FloatWithFallback(key string, fallback float64) float64 {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.(float64)
}

func (m *MockPreferences) SetFloat(key string, value float64) {
	m.data[key] = value
}

func (m *MockPreferences) Int(key string) int {
	val, ok := m.data[key]
	if !ok {
		return 0
	}
	return val.(int)
}

func (m *MockPreferences) IntWithFallback(key string, fallback int) int {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.(int)
}

func (m *MockPreferences) SetInt(key string, value int) {
	m.data[key] = value
}

func (m *MockPreferences) String(key string) string {
	val, ok := m.data[key]
	if !ok {
		return ""
	}
	return val.(string)
}

func (m *MockPreferences) StringWithFallback(key string, fallback string) string {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.(string)
}

func (m *MockPreferences) SetString(key string, value string) {
	m.data[key] = value
}

func (m *MockPreferences) StringList(key string) []string {
	val, ok := m.data[key]
	if !ok {
		return []string{}
	}
	return val.([]string)
}

func (m *MockPreferences) StringListWithFallback(key string, fallback []string) []string {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.([]string)
}

func (m *MockPreferences) SetStringList(key string, value []string) {
	m.data[key] = value
}

func (m *MockPreferences) BoolList(key string) []bool {
	val, ok := m.data[key]
	if !ok {
		return []bool{}
	}
	return val.([]bool)
}

func (m *MockPreferences) BoolListWithFallback(key string, fallback []bool) []bool {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.([]bool)
}

func (m *MockPreferences) SetBoolList(key string, value []bool) {
	m.data[key] = value
}

func (m *MockPreferences) FloatList(key string) []float64 {
	val, ok := m.data[key]
	if !ok {
		return []float64{}
	}
	return val.([]float64)
}

func (m *MockPreferences) FloatListWithFallback(key string, fallback []float64) []float64 {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.([]float64)
}

func (m *MockPreferences) SetFloatList(key string, value []float64) {
	m.data[key] = value
}

func (m *MockPreferences) IntList(key string) []int {
	val, ok := m.data[key]
	if !ok {
		return []int{}
	}
	return val.([]int)
}

func (m *MockPreferences) IntListWithFallback(key string, fallback []int) []int {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.([]int)
}

func (m *MockPreferences) SetIntList(key string, value []int) {
	m.data[key] = value
}

func (m *MockPreferences) RemoveValue(key string) {
	delete(m.data, key)
}

func (m *MockPreferences) AddChangeListener(func()) {
	// No-op for now
}

func (m *MockPreferences) ChangeListeners() []func() {
	return []func(){}
}

func TestLoadDefaults(t *testing.T) {
	store := NewStore(NewMockPreferences())

	p := store.Load()

	assert.Equal(t, "Arial", p.FontName)
	assert.Equal(t, 16, p.FontSize)
	assert.Equal(t, ThemeDark, p.Theme)
	assert.Equal(t, "", p.TextContent)
	assert.False(t, p.ShowDebug)
	assert.Nil(t, p.WindowGeometry)
	assert.Nil(t, p.WindowState)
	assert.Equal(t, DefaultPreferences(), p)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(NewMockPreferences())

	saved := Preferences{
		FontName:       "Courier New",
		FontSize:       24,
		Theme:          ThemeLight,
		TextContent:    "The quick brown fox\njumps over the lazy dog",
		ShowDebug:      true,
		WindowGeometry: []byte{0x00, 0x01, 0xfe, 0xff, 0x42},
		WindowState:    []byte("opaque state"),
	}
	store.Save(saved)

	loaded := store.Load()
	assert.Equal(t, saved, loaded)
}

func TestBlobRoundTrip(t *testing.T) {
	store := NewStore(NewMockPreferences())

	t.Run("ByteForByte", func(t *testing.T) {
		p := DefaultPreferences()
		p.WindowGeometry = []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x0a}
		store.Save(p)
		assert.Equal(t, p.WindowGeometry, store.Load().WindowGeometry)
	})

	t.Run("NilClearsKey", func(t *testing.T) {
		p := DefaultPreferences()
		p.WindowGeometry = nil
		store.Save(p)
		assert.Nil(t, store.Load().WindowGeometry)
	})

	t.Run("GarbageLoadsAsAbsent", func(t *testing.T) {
		prefs := NewMockPreferences()
		prefs.SetString(WindowStatePrefKey, "not base64 !!!")
		assert.Nil(t, NewStore(prefs).Load().WindowState)
	})
}

func TestFontSizeBoundaries(t *testing.T) {
	store := NewStore(NewMockPreferences())

	for _, size := range []int{8, 72} {
		p := DefaultPreferences()
		p.FontSize = size
		store.Save(p)
		assert.Equal(t, size, store.Load().FontSize)
	}
}

func TestMalformedValuesDefaulted(t *testing.T) {
	t.Run("NegativeFontSize", func(t *testing.T) {
		prefs := NewMockPreferences()
		prefs.SetInt(FontSizePrefKey, -3)
		assert.Equal(t, DefaultFontSize, NewStore(prefs).Load().FontSize)
	})

	t.Run("UnknownThemeString", func(t *testing.T) {
		prefs := NewMockPreferences()
		prefs.SetString(ThemeModePrefKey, "Solarized")
		assert.Equal(t, ThemeDark, NewStore(prefs).Load().Theme)
	})
}

func TestShowDebugToggle(t *testing.T) {
	store := NewStore(NewMockPreferences())

	p := DefaultPreferences()
	p.ShowDebug = true
	store.Save(p)
	assert.True(t, store.Load().ShowDebug)

	p.ShowDebug = false
	store.Save(p)
	assert.False(t, store.Load().ShowDebug)
}

// TestSessionScenario walks the fresh-install / edit / relaunch flow end to
// end: first Load yields pure defaults, the close handler persists the buffer
// and the next run gets it back.
func TestSessionScenario(t *testing.T) {
	prefs := NewMockPreferences()

	// Fresh install.
	p := NewStore(prefs).Load()
	assert.Equal(t, "Arial", p.FontName)
	assert.Equal(t, 16, p.FontSize)
	assert.Equal(t, ThemeDark, p.Theme)
	assert.Equal(t, "", p.TextContent)
	assert.False(t, p.ShowDebug)

	// User types and closes the window.
	p.TextContent = "hello"
	NewStore(prefs).Save(p)

	// Relaunch against the same backing store.
	assert.Equal(t, "hello", NewStore(prefs).Load().TextContent)
}
