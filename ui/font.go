package ui

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/dixieflatline76/Quill/util/log"
)

// fontCandidateDirs returns the ordered list of directories searched for a
// font family, most specific first.
func fontCandidateDirs() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	switch runtime.GOOS {
	case "windows":
		return []string{
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Microsoft", "Windows", "Fonts"),
			filepath.Join(os.Getenv("WINDIR"), "Fonts"),
		}
	case "darwin":
		return []string{
			filepath.Join(home, "Library", "Fonts"),
			"/Library/Fonts",
			"/System/Library/Fonts",
		}
	default:
		return []string{
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
			"/usr/local/share/fonts",
			"/usr/share/fonts",
		}
	}
}

// resolveFontResource walks the candidate font directories looking for a
// TTF/OTF file matching the family name and loads the first hit. Any miss or
// load failure degrades to nil, which callers treat as "use the toolkit
// default font". Resolution is never fatal.
func resolveFontResource(family string) fyne.Resource {
	want := normalizeFontName(family)
	if want == "" {
		return nil
	}

	for _, dir := range fontCandidateDirs() {
		var found string
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil // Skip unreadable entries, keep walking
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".ttf" && ext != ".otf" {
				return nil
			}
			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			if normalizeFontName(base) == want {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if err != nil || found == "" {
			continue
		}

		res, err := fyne.LoadResourceFromPath(found)
		if err != nil {
			log.Printf("failed to load font %s from %s: %v", family, found, err)
			continue
		}
		log.Debugf("font %q resolved to %s", family, found)
		return res
	}

	log.Debugf("font %q not found, using toolkit default", family)
	return nil
}

// normalizeFontName lowers a family or file name and strips separators so
// "Courier New" matches "CourierNew.ttf" and "courier-new.otf".
func normalizeFontName(name string) string {
	name = strings.ToLower(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, name)
}
