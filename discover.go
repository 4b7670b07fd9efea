package fontindex

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Lister enumerates candidate font file paths.
// The returned list may contain duplicates, unreadable entries, or files
// that are not fonts at all; the scanner sorts that out. Implementations
// should return absolute paths.
type Lister interface {
	ListFontPaths() ([]string, error)
}

// fontExtensions is the closed set of file formats the scanner accepts.
var fontExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
	".ttc": true,
	".otc": true,
}

// FontPathEnv names an environment variable holding extra font directories,
// separated by the OS path list separator. SystemLister searches these in
// addition to the standard locations.
const FontPathEnv = "FONTINDEX_PATH"

// SystemLister discovers font files in the standard per-OS font directories.
// The zero value is ready to use; ExtraDirs adds search roots on top of the
// standard locations and the FONTINDEX_PATH environment variable.
//
// Directories that do not exist are silently skipped, so one lister works
// across differently configured machines.
type SystemLister struct {
	ExtraDirs []string
}

// NewSystemLister creates a SystemLister with optional extra search roots.
func NewSystemLister(extraDirs ...string) *SystemLister {
	return &SystemLister{ExtraDirs: extraDirs}
}

// ListFontPaths implements Lister.
// Each directory tree is searched recursively; only files with a recognized
// font extension are returned.
func (l *SystemLister) ListFontPaths() ([]string, error) {
	var paths []string
	for _, dir := range l.searchDirs() {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		matches, err := doublestar.FilepathGlob(filepath.Join(dir, "**", "*"))
		if err != nil {
			Logger().Debug("font directory glob failed", "dir", dir, "err", err)
			continue
		}
		for _, m := range matches {
			if fontExtensions[strings.ToLower(filepath.Ext(m))] {
				paths = append(paths, m)
			}
		}
	}
	return paths, nil
}

// searchDirs returns the directories to scan, standard locations first.
func (l *SystemLister) searchDirs() []string {
	dirs := systemFontDirs()
	if env := os.Getenv(FontPathEnv); env != "" {
		for _, dir := range filepath.SplitList(env) {
			if dir != "" {
				dirs = append(dirs, dir)
			}
		}
	}
	return append(dirs, l.ExtraDirs...)
}

// systemFontDirs returns the standard font directories for the current OS.
func systemFontDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		dirs := []string{filepath.Join(os.Getenv("WINDIR"), "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	case "darwin":
		dirs := []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	default:
		// Linux and the BSDs.
		dirs := []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
		}
		if home != "" {
			dirs = append(dirs,
				filepath.Join(home, ".local", "share", "fonts"),
				filepath.Join(home, ".fonts"),
			)
		}
		return dirs
	}
}
