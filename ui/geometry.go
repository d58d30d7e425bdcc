package ui

import (
	"encoding/json"

	"fyne.io/fyne/v2"

	"github.com/dixieflatline76/Quill/util/log"
)

// Default window size for a fresh install with no saved geometry.
const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
)

// windowGeometry is the serialized window bounds. The preferences store
// treats it as an opaque blob; only this package knows the layout.
type windowGeometry struct {
	Width  float32 `json:"w"`
	Height float32 `json:"h"`
}

// windowState is the serialized dock layout: whether the debug console is
// docked open and where the split sits.
type windowState struct {
	ConsoleOpen bool    `json:"console_open"`
	SplitOffset float64 `json:"split_offset"`
}

// encodeGeometry serializes the window size for persistence.
func encodeGeometry(size fyne.Size) []byte {
	data, err := json.Marshal(windowGeometry{Width: size.Width, Height: size.Height})
	if err != nil {
		log.Printf("failed to encode window geometry: %v", err)
		return nil
	}
	return data
}

// decodeGeometry restores a saved window size. Absent or damaged blobs
// report ok=false and the caller applies the default size.
func decodeGeometry(data []byte) (fyne.Size, bool) {
	if len(data) == 0 {
		return fyne.NewSize(defaultWindowWidth, defaultWindowHeight), false
	}
	var g windowGeometry
	if err := json.Unmarshal(data, &g); err != nil {
		log.Printf("ignoring unreadable window geometry: %v", err)
		return fyne.NewSize(defaultWindowWidth, defaultWindowHeight), false
	}
	if g.Width <= 0 || g.Height <= 0 {
		log.Printf("ignoring window geometry with bounds %gx%g", g.Width, g.Height)
		return fyne.NewSize(defaultWindowWidth, defaultWindowHeight), false
	}
	return fyne.NewSize(g.Width, g.Height), true
}

// encodeState serializes the dock/toolbar layout for persistence.
func encodeState(s windowState) []byte {
	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("failed to encode window state: %v", err)
		return nil
	}
	return data
}

// decodeState restores the saved dock layout, reporting ok=false for absent
// or damaged blobs.
func decodeState(data []byte) (windowState, bool) {
	if len(data) == 0 {
		return windowState{}, false
	}
	var s windowState
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("ignoring unreadable window state: %v", err)
		return windowState{}, false
	}
	return s, true
}
