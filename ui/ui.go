package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/dixieflatline76/Quill/asset"
	"github.com/dixieflatline76/Quill/config"
	"github.com/dixieflatline76/Quill/util"
	"github.com/dixieflatline76/Quill/util/log"
)

// App is the editor shell: the main window, the text surface, the settings
// dialog and the debug console, wired to the preferences store.
type App struct {
	app       fyne.App
	win       fyne.Window
	store     *config.Store
	prefs     config.Preferences
	assetMgr  *asset.Manager
	editor    *widget.Entry
	console   *DebugConsole
	toolbar   *widget.Toolbar
	split     *container.Split
	sessionID string
}

// New builds the shell around an explicit preferences record. The store and
// the loaded record are threaded in from main; the shell never reaches for
// ambient state.
func New(a fyne.App, store *config.Store, prefs config.Preferences) *App {
	qa := &App{
		app:       a,
		store:     store,
		prefs:     prefs,
		assetMgr:  asset.NewManager(),
		console:   NewDebugConsole(prefs.ShowDebug),
		sessionID: uuid.NewString(),
	}

	a.Settings().SetTheme(newEditorTheme(prefs))

	qa.win = a.NewWindow(config.AppName)
	qa.setWindowIcon()

	qa.editor = widget.NewMultiLineEntry()
	qa.editor.Wrapping = fyne.TextWrapWord
	qa.editor.SetText(prefs.TextContent)

	qa.toolbar = widget.NewToolbar(
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.InfoIcon(), qa.showAbout),
		widget.NewToolbarAction(theme.SettingsIcon(), qa.showSettingsWindow),
	)

	qa.rebuildContent()
	qa.restoreWindowLayout()

	// The close handler captures the buffer and persists unconditionally.
	qa.win.SetCloseIntercept(func() {
		qa.persist()
		qa.win.Close()
	})

	qa.console.Logf("Application started")
	qa.console.Logf("Session %s", qa.sessionID)
	qa.console.Logf("Current theme: %s", prefs.Theme)

	return qa
}

// rebuildContent assembles the window content, docking the debug console
// under the editor when it is enabled.
func (qa *App) rebuildContent() {
	var center fyne.CanvasObject = qa.editor
	qa.split = nil
	if qa.prefs.ShowDebug {
		split := container.NewVSplit(qa.editor, qa.console.Content())
		split.SetOffset(defaultSplitOffset)
		if state, ok := decodeState(qa.prefs.WindowState); ok && state.SplitOffset > 0 {
			split.SetOffset(state.SplitOffset)
		}
		qa.split = split
		center = split
	}
	qa.win.SetContent(container.NewBorder(qa.toolbar, nil, nil, nil, center))
}

// restoreWindowLayout applies the saved window geometry blob, falling back
// to the default size centered on screen.
func (qa *App) restoreWindowLayout() {
	size, ok := decodeGeometry(qa.prefs.WindowGeometry)
	qa.win.Resize(size)
	if !ok {
		qa.win.CenterOnScreen()
	}
}

// persist captures the live window into the preferences record and saves it.
// Called by the close handler and after every settings save.
func (qa *App) persist() {
	qa.prefs.TextContent = qa.editor.Text
	qa.prefs.WindowGeometry = encodeGeometry(qa.win.Canvas().Size())

	state := windowState{ConsoleOpen: qa.prefs.ShowDebug, SplitOffset: defaultSplitOffset}
	if qa.split != nil {
		state.SplitOffset = qa.split.Offset
	}
	qa.prefs.WindowState = encodeState(state)

	qa.store.Save(qa.prefs)
	log.Debugf("preferences persisted")
}

// checkForUpdates polls for a newer release once and reports the outcome in
// the debug console. It runs on a background goroutine, so console reporting
// hops to the UI goroutine. Failures are logged and dropped; an update check
// must never disturb the editor.
func (qa *App) checkForUpdates() {
	result, err := util.CheckForUpdates(nil)
	fyne.Do(func() {
		if err != nil {
			log.Printf("update check failed: %v", err)
			qa.console.Logf("Update check failed: %v", err)
			return
		}
		if result.UpdateAvailable {
			qa.console.Logf("Update available: %s (running %s)", result.LatestVersion, result.CurrentVersion)
		} else {
			qa.console.Logf("Running latest version %s", result.CurrentVersion)
		}
	})
}

// Preferences returns the current preferences record.
func (qa *App) Preferences() config.Preferences {
	return qa.prefs
}

// Run shows the main window and enters the event loop.
func (qa *App) Run() {
	qa.win.Show()
	qa.CreateSplashScreen()
	go qa.checkForUpdates()
	qa.app.Run()
}
