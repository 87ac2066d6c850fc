// Package assistant provides embedded runtime resources (help text) and an
// overlay filesystem that checks local disk first, falling back to embedded.
package assistant

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

//go:embed help/*.txt
var rawHelp embed.FS

// Help is the embedded help filesystem with the "help/" prefix stripped.
var Help = mustSub(rawHelp, "help")

// HelpFile is the name of the help text inside Help.
const HelpFile = "help.txt"

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadHelp returns the help text, preferring localDir/help.txt over the
// embedded copy. Trailing newlines are trimmed.
func LoadHelp(localDir string) (string, error) {
	data, err := fs.ReadFile(OverlayFS(localDir, Help), HelpFile)
	if err != nil {
		return "", fmt.Errorf("help: reading %s: %w", HelpFile, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// OverlayFS returns a filesystem that checks localDir on disk first,
// falling back to the embedded filesystem for files not found locally.
func OverlayFS(localDir string, embedded fs.FS) fs.FS {
	return overlayFS{localDir: localDir, embedded: embedded}
}

type overlayFS struct {
	localDir string
	embedded fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if o.localDir != "" {
		f, err := os.Open(path.Join(o.localDir, name))
		if err == nil {
			return f, nil
		}
	}
	return o.embedded.Open(name)
}
