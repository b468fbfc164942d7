package names

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/iro-cli/iro/filesystem"
	"github.com/iro-cli/iro/log"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// LoadCustom reads user-defined names from a JSON object of the form
// {"name": "hex"}. A missing file yields no entries and no error.
func LoadCustom(path string) ([]Entry, error) {
	raw, err := filesystem.ReadJSON[map[string]string](path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read custom names %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(raw))
	for name, hex := range raw {
		normalized, ok := NormalizeHex(hex)
		if !ok {
			return nil, fmt.Errorf("custom name %q: invalid hex code %q", name, hex)
		}
		if NormalizeName(name) == "" {
			return nil, fmt.Errorf("custom name for %q is empty", hex)
		}
		entries = append(entries, Entry{Name: NormalizeName(name), Hex: normalized})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	log.Debugf("loaded %d custom color names from %s", len(entries), path)
	return entries, nil
}

// SaveCustom writes entries as a JSON object, replacing any existing file.
func SaveCustom(path string, entries []Entry) error {
	raw := lo.SliceToMap(entries, func(e Entry) (string, string) {
		hex, _ := NormalizeHex(e.Hex)
		return NormalizeName(e.Name), hex
	})

	return filesystem.WriteJSON(path, raw)
}
