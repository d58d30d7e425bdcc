package main

import (
	"fyne.io/fyne/v2/app"

	"github.com/dixieflatline76/Quill/config"
	"github.com/dixieflatline76/Quill/ui"
	"github.com/dixieflatline76/Quill/util/log"
)

func main() {
	// Ensure only one instance of the editor is running at a time
	ok, err := acquireLock()
	if err != nil {
		log.Fatalf("Failed to acquire single instance lock: %v", err)
	}
	if !ok {
		log.Printf("Another instance of %s is already running.", config.AppName)
		return
	}
	defer releaseLock()

	// The application ID scopes the preferences store, so repeated runs on
	// the same machine and user find the same state.
	a := app.NewWithID(config.AppName)

	store := config.NewStore(a.Preferences())
	editor := ui.New(a, store, store.Load())
	editor.Run()
}
