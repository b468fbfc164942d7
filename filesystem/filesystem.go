// Package filesystem routes every disk access through a swappable afero backend,
// so tests can run against an in-memory filesystem.
package filesystem

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches to the operating system filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// ReadJSON decodes the JSON file at path into a value of type T.
// Errors from the backend are returned unwrapped so callers can test for fs.ErrNotExist.
func ReadJSON[T any](path string) (T, error) {
	var v T

	data, err := API().ReadFile(path)
	if err != nil {
		return v, err
	}

	err = json.Unmarshal(data, &v)
	return v, err
}

// WriteJSON encodes v as indented JSON to path, creating parent directories as needed.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	if err := API().MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	return API().WriteFile(path, data, 0644)
}
