package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Quill/util"
	"github.com/dixieflatline76/Quill/util/log"
)

// debugTimestampFormat renders milliseconds, matching the console's original
// line format.
const debugTimestampFormat = "15:04:05.000"

// DebugConsole is the read-only diagnostic panel docked under the editor.
// Logf must run on the UI goroutine; background work (the update check)
// hops through fyne.Do before logging. The enabled flag is a SafeFlag since
// it is read from those goroutines.
type DebugConsole struct {
	enabled *util.SafeFlag

	mu    sync.Mutex
	lines []string

	output *widget.Label
	scroll *container.Scroll
}

// NewDebugConsole creates the console. It collects messages only while
// enabled.
func NewDebugConsole(enabled bool) *DebugConsole {
	output := widget.NewLabel("")
	output.TextStyle = fyne.TextStyle{Monospace: true}
	output.Wrapping = fyne.TextWrapWord

	return &DebugConsole{
		enabled: util.NewSafeBoolWithValue(enabled),
		output:  output,
		scroll:  container.NewVScroll(output),
	}
}

// Logf appends a timestamped message to the console and mirrors it to the
// application log. A disabled console drops the message, same as the log
// call being the only trace. Callers off the UI goroutine wrap the call in
// fyne.Do themselves.
func (dc *DebugConsole) Logf(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	log.Debugf("%s", msg)

	if !dc.enabled.Value() {
		return
	}

	line := fmt.Sprintf("[%s] %s", time.Now().Format(debugTimestampFormat), msg)

	dc.mu.Lock()
	dc.lines = append(dc.lines, line)
	text := strings.Join(dc.lines, "\n")
	dc.mu.Unlock()

	dc.output.SetText(text)
	dc.scroll.ScrollToBottom()
}

// SetEnabled toggles message collection.
func (dc *DebugConsole) SetEnabled(enabled bool) {
	dc.enabled.Set(enabled)
}

// Enabled reports whether the console is collecting messages.
func (dc *DebugConsole) Enabled() bool {
	return dc.enabled.Value()
}

// Lines returns a copy of the collected console lines.
func (dc *DebugConsole) Lines() []string {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return append([]string(nil), dc.lines...)
}

// Content returns the dockable console widget.
func (dc *DebugConsole) Content() fyne.CanvasObject {
	header := widget.NewLabel("Debug Console")
	header.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewBorder(header, nil, nil, nil, dc.scroll)
}
