package core

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jakebark/albumdir/internal/config"
)

// ErrInvalidName is returned for song paths that cannot be stored losslessly in JSON
var ErrInvalidName = errors.New("name is not valid UTF-8")

// FindSongsInDirectory walks albumDir and returns every song beneath it,
// with paths relative to root. albumDir itself may be a symlink; links
// inside it are not followed.
func FindSongsInDirectory(albumDir, root string) ([]Song, error) {
	walkRoot, err := filepath.EvalSymlinks(albumDir)
	if err != nil {
		return nil, fmt.Errorf("resolving album %s: %w", albumDir, err)
	}

	var songs []Song
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !isSong(d.Name()) {
			return nil
		}

		// report the path under albumDir, not under the resolved link target
		inAlbum, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return fmt.Errorf("resolving %s against %s: %w", path, walkRoot, err)
		}
		relPath, err := filepath.Rel(root, filepath.Join(albumDir, inAlbum))
		if err != nil {
			return fmt.Errorf("resolving %s against %s: %w", path, root, err)
		}
		if !utf8.ValidString(relPath) {
			return fmt.Errorf("song %q: %w", relPath, ErrInvalidName)
		}

		songs = append(songs, Song{
			Name: d.Name(),
			Path: filepath.ToSlash(relPath),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return songs, nil
}

func isSong(name string) bool {
	return config.SongExtensions[fileExtension(name)]
}

// fileExtension returns the text after the last dot, ignoring leading dots
// so ".flac" has no extension.
func fileExtension(name string) string {
	trimmed := strings.TrimLeft(name, ".")
	i := strings.LastIndexByte(trimmed, '.')
	if i < 0 {
		return ""
	}
	return trimmed[i+1:]
}
