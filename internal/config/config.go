package config

const (
	// OutputFilename is the manifest written to the working directory
	OutputFilename = "albums.json"

	// JSONIndent is the per-level indentation of the manifest
	JSONIndent = "  "

	// ManifestFileMode is the permission set on a newly created manifest
	ManifestFileMode = 0644
)

// SongExtensions are the file extensions (without the dot) collected as songs.
// Matching is case-sensitive.
var SongExtensions = map[string]bool{
	"mp3":  true,
	"opus": true,
	"flac": true,
}
