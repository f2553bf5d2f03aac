package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrUnsafePath is returned for manifest paths that would resolve outside the target directory
var ErrUnsafePath = errors.New("path escapes target directory")

// SongStatus is a manifest song plus whether a local copy already exists
type SongStatus struct {
	Song
	Downloaded bool
}

type AlbumStatus struct {
	Name  string
	Songs []SongStatus
}

// IsSongDownloaded reports whether song.Path exists under targetDir as a non-empty file
func IsSongDownloaded(targetDir string, song Song) (bool, error) {
	localPath := filepath.FromSlash(song.Path)
	if !filepath.IsLocal(localPath) {
		return false, fmt.Errorf("song %q: %w", song.Path, ErrUnsafePath)
	}

	info, err := os.Stat(filepath.Join(targetDir, localPath))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking song %s: %w", song.Path, err)
	}
	return info.Mode().IsRegular() && info.Size() > 0, nil
}

// CheckDownloads marks every song in manifest with its local download state under targetDir
func CheckDownloads(manifest Manifest, targetDir string) ([]AlbumStatus, error) {
	statuses := make([]AlbumStatus, 0, len(manifest.Albums))
	for _, album := range manifest.Albums {
		status := AlbumStatus{Name: album.Name, Songs: make([]SongStatus, 0, len(album.Songs))}
		for _, song := range album.Songs {
			downloaded, err := IsSongDownloaded(targetDir, song)
			if err != nil {
				return nil, err
			}
			status.Songs = append(status.Songs, SongStatus{Song: song, Downloaded: downloaded})
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
