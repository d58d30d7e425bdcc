package config

import (
	"encoding/base64"

	"fyne.io/fyne/v2"

	"github.com/dixieflatline76/Quill/util/log"
)

// Preference keys for the editor. These names are a compatibility contract;
// the on-disk format underneath fyne.Preferences is not.
const (
	FontNamePrefKey       = "font_name"       // FontNamePrefKey stores the editor font family name
	FontSizePrefKey       = "font_size"       // FontSizePrefKey stores the editor font size in points
	ThemeModePrefKey      = "theme_mode"      // ThemeModePrefKey stores the theme mode as a string
	TextContentPrefKey    = "text_content"    // TextContentPrefKey stores the full text buffer of the last session
	ShowDebugPrefKey      = "show_debug"      // ShowDebugPrefKey stores the debug console visibility flag
	WindowGeometryPrefKey = "window_geometry" // WindowGeometryPrefKey stores the serialized window bounds
	WindowStatePrefKey    = "window_state"    // WindowStatePrefKey stores the serialized dock/toolbar layout
)

// Defaults applied when a key is missing or holds a malformed value. A fresh
// install with no backing store must load into a fully valid record.
const (
	DefaultFontName = "Arial"
	DefaultFontSize = 16
	DefaultTheme    = ThemeDark
)

// Preferences is the durable user state for a single run of the editor.
// Geometry and state are opaque blobs owned by the window chrome; the store
// only round-trips them.
type Preferences struct {
	FontName       string
	FontSize       int
	Theme          ThemeMode
	TextContent    string
	ShowDebug      bool
	WindowGeometry []byte
	WindowState    []byte
}

// DefaultPreferences returns the record a fresh install starts from.
func DefaultPreferences() Preferences {
	return Preferences{
		FontName: DefaultFontName,
		FontSize: DefaultFontSize,
		Theme:    DefaultTheme,
	}
}

// Store is the load/save accessor for user preferences. It is a thin layer
// over fyne.Preferences, which scopes persistence by the application ID
// passed to app.NewWithID.
type Store struct {
	prefs fyne.Preferences
}

// NewStore creates a Store backed by the given preferences.
func NewStore(p fyne.Preferences) *Store {
	return &Store{prefs: p}
}

// Load reads every field from the backing store, filling missing or malformed
// keys with their defaults. A fresh or damaged store is a normal state, not
// an error; callers always get a fully populated record.
func (s *Store) Load() Preferences {
	p := Preferences{
		FontName:    s.prefs.StringWithFallback(FontNamePrefKey, DefaultFontName),
		FontSize:    s.prefs.IntWithFallback(FontSizePrefKey, DefaultFontSize),
		Theme:       ParseThemeMode(s.prefs.StringWithFallback(ThemeModePrefKey, DefaultTheme.String())),
		TextContent: s.prefs.StringWithFallback(TextContentPrefKey, ""),
		ShowDebug:   s.prefs.BoolWithFallback(ShowDebugPrefKey, false),
	}

	// The store is user editable, so guard against a nonsense size.
	if p.FontSize <= 0 {
		log.Printf("ignoring stored %s %d, using default %d", FontSizePrefKey, p.FontSize, DefaultFontSize)
		p.FontSize = DefaultFontSize
	}

	p.WindowGeometry = s.loadBlob(WindowGeometryPrefKey)
	p.WindowState = s.loadBlob(WindowStatePrefKey)

	return p
}

// Save writes every field to the backing store under its fixed key. Writes
// are per key, so a crash mid-save can leave a torn record; that risk is
// accepted for a local single-user store. Persistence itself is best effort
// and handled by the toolkit, it never propagates a failure here.
func (s *Store) Save(p Preferences) {
	s.prefs.SetString(FontNamePrefKey, p.FontName)
	s.prefs.SetInt(FontSizePrefKey, p.FontSize)
	s.prefs.SetString(ThemeModePrefKey, p.Theme.String())
	s.prefs.SetString(TextContentPrefKey, p.TextContent)
	s.prefs.SetBool(ShowDebugPrefKey, p.ShowDebug)
	s.saveBlob(WindowGeometryPrefKey, p.WindowGeometry)
	s.saveBlob(WindowStatePrefKey, p.WindowState)
}

// loadBlob reads an opaque binary value stored as base64. Absent or
// undecodable values load as nil, which callers treat as "no saved state".
func (s *Store) loadBlob(key string) []byte {
	encoded := s.prefs.StringWithFallback(key, "")
	if encoded == "" {
		return nil
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		log.Printf("ignoring undecodable %s: %v", key, err)
		return nil
	}
	return data
}

// saveBlob stores an opaque binary value as base64. A nil blob removes the
// key so the next Load reports it as absent.
func (s *Store) saveBlob(key string, data []byte) {
	if data == nil {
		s.prefs.RemoveValue(key)
		return
	}
	s.prefs.SetString(key, base64.StdEncoding.EncodeToString(data))
}
