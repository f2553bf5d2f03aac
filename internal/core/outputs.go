package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jakebark/albumdir/internal/config"
)

// WriteManifest wraps albums in a Manifest and writes it to filename,
// replacing any existing file.
func WriteManifest(filename string, albums []Album) error {
	data, err := createManifestJSON(albums)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, config.ManifestFileMode); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// ReadManifest parses a manifest written by WriteManifest
func ReadManifest(filename string) (Manifest, error) {
	var manifest Manifest
	data, err := os.ReadFile(filename)
	if err != nil {
		return manifest, fmt.Errorf("reading manifest: %w", err)
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return manifest, fmt.Errorf("parsing manifest %s: %w", filename, err)
	}
	return manifest, nil
}

func createManifestJSON(albums []Album) ([]byte, error) {
	if albums == nil {
		albums = []Album{} // "albums": [] rather than null
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false) // keep &, < and > literal
	encoder.SetIndent("", config.JSONIndent)
	if err := encoder.Encode(Manifest{Albums: albums}); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func reportResult(w io.Writer, directory, output string) {
	fmt.Fprintf(w, "Successfully converted albums in '%s' to %s\n", directory, filepath.Base(output))
}
