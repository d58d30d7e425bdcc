package ui

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// iconCandidatePaths returns the ordered filesystem locations checked for a
// user-supplied window icon.
func iconCandidatePaths() []string {
	paths := []string{}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), "icon.png"))
	}
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(wd, "icon.png"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "icon.png"))
	}
	return paths
}

// setWindowIcon resolves the window icon through an ordered fallback chain:
// user-supplied files, then the embedded application icon, then the theme's
// guaranteed icon. Never fatal.
func (qa *App) setWindowIcon() {
	for _, path := range iconCandidatePaths() {
		res, err := fyne.LoadResourceFromPath(path)
		if err != nil {
			continue
		}
		qa.win.SetIcon(res)
		qa.console.Logf("Icon loaded from: %s", path)
		return
	}

	if icon, err := qa.assetMgr.GetIcon("app.png"); err == nil {
		qa.win.SetIcon(icon)
		qa.app.SetIcon(icon)
		qa.console.Logf("Using embedded application icon")
		return
	}

	qa.win.SetIcon(theme.DocumentIcon())
	qa.console.Logf("Using fallback system icon")
}
