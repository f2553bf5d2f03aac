package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jakebark/albumdir/internal/inputs"
)

// ErrNotDirectory is returned when the scan root exists but is not a directory
var ErrNotDirectory = errors.New("not a directory")

// ProcessDirectory scans the requested directory, writes the manifest to
// output and reports success on w.
func ProcessDirectory(userInput inputs.UserInput, output string, w io.Writer) error {
	albums, err := DirectoryToAlbums(userInput.Directory)
	if err != nil {
		return err
	}
	if err := WriteManifest(output, albums); err != nil {
		return err
	}
	reportResult(w, userInput.Directory, output)
	return nil
}

// DirectoryToAlbums returns one album per subdirectory of root that contains songs.
// Albums keep the order of the directory listing.
func DirectoryToAlbums(root string) ([]Album, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading album root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("reading album root %s: %w", root, ErrNotDirectory)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("listing album root: %w", err)
	}

	albums := []Album{}
	for _, entry := range entries {
		albumDir := filepath.Join(root, entry.Name())
		if !isAlbumDir(albumDir, entry) {
			continue
		}

		songs, err := FindSongsInDirectory(albumDir, root)
		if err != nil {
			return nil, err
		}
		if len(songs) == 0 {
			continue
		}
		albums = append(albums, Album{Name: entry.Name(), Songs: songs})
	}
	return albums, nil
}

// isAlbumDir reports whether entry is a directory, following a symlink
// to its target. Broken links are skipped.
func isAlbumDir(path string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
