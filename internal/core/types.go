package core

// Song is an audio file found under an album directory
type Song struct {
	Name string `json:"name"`
	Path string `json:"path"` // slash-separated, relative to the scanned root
}

// Album is a top-level subdirectory holding at least one song
type Album struct {
	Name  string `json:"name"`
	Songs []Song `json:"songs"`
}

// Manifest is the root object written to albums.json
type Manifest struct {
	Albums []Album `json:"albums"`
}
