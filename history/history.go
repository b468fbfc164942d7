// Package history keeps a persistent, most-recent-first record of converted colors.
package history

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/iro-cli/iro/color"
	"github.com/iro-cli/iro/filesystem"
	"github.com/iro-cli/iro/key"
	"github.com/iro-cli/iro/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Record is a single remembered conversion.
type Record struct {
	Input string    `json:"input"`
	Hex   string    `json:"hex"`
	Name  string    `json:"name,omitempty"`
	Time  time.Time `json:"time"`
}

var cacher = gache.New[[]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the remembered conversions, most recent first.
func Get() ([]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []*Record{}, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}
	if expired || cached == nil {
		return []*Record{}, nil
	}
	return cached, nil
}

// Remember stores c as converted from input. An earlier record of the same
// hex code is replaced, and the history is trimmed to the configured limit.
// Nothing is stored when history saving is disabled.
func Remember(input string, c color.Color) error {
	if !viper.GetBool(key.HistorySave) {
		return nil
	}

	records, err := Get()
	if err != nil {
		return err
	}

	record := &Record{
		Input: input,
		Hex:   c.Hex(),
		Name:  c.Name().OrEmpty(),
		Time:  time.Now(),
	}

	records = lo.Reject(records, func(r *Record, _ int) bool {
		return r.Hex == record.Hex
	})
	records = append([]*Record{record}, records...)

	if limit := viper.GetInt(key.HistoryLimit); limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return cacher.Set(records)
}

// Clear removes every record.
func Clear() error {
	return cacher.Set([]*Record{})
}
