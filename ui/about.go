package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Quill/config"
	"github.com/dixieflatline76/Quill/util/log"
)

// showAbout opens the About window with the embedded description and the
// running version.
func (qa *App) showAbout() {
	w := qa.app.NewWindow(fmt.Sprintf("About %s", config.AppName))
	w.Resize(fyne.NewSize(360, 200))
	w.CenterOnScreen()
	w.SetContent(qa.aboutContent(w))
	w.Show()
}

// aboutContent assembles the About window body: the embedded about text with
// the version on the left and a close button opposed on the right.
func (qa *App) aboutContent(w fyne.Window) *fyne.Container {
	about, err := qa.assetMgr.GetText("about.txt")
	if err != nil {
		log.Printf("failed to load about text: %v", err)
		about = config.AppName
	}

	body := widget.NewLabel(about)
	body.Wrapping = fyne.TextWrapWord

	version := widget.NewLabel(fmt.Sprintf("Version: %s", config.AppVersion))
	closeButton := widget.NewButton("Close", w.Close)

	bottom := NewSplitRowWithAlignment(version, closeButton, SplitProportion.Half, SplitAlign.Opposed)
	return container.NewBorder(nil, bottom, nil, nil, body)
}
