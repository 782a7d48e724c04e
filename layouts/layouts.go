// Package layouts holds the item layouts a round can start from.
package layouts

import (
	"embed"
	"fmt"
	"math/rand"
	"path"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
)

//go:embed *.csv
var layoutsFS embed.FS

// Placement is one row of a layout: an archetype name and the top-left
// corner of its sprite in pixels.
type Placement struct {
	Kind string  `csv:"kind"`
	X    float64 `csv:"x"`
	Y    float64 `csv:"y"`
}

// Names lists the embedded layouts in lexical order.
func Names() []string {
	entries, err := layoutsFS.ReadDir(".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".csv" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".csv"))
	}
	sort.Strings(names)
	return names
}

// Load returns the placements of a named layout.
func Load(name string) ([]Placement, error) {
	data, err := layoutsFS.ReadFile(strings.TrimSuffix(name, ".csv") + ".csv")
	if err != nil {
		return nil, fmt.Errorf("layouts: load %s: %w", name, err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]Placement, error) {
	var rows []Placement
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("layouts: parse: %w", err)
	}
	for i := range rows {
		rows[i].Kind = strings.TrimSpace(strings.ToLower(rows[i].Kind))
	}
	return rows, nil
}

// Random picks one of the embedded layouts.
func Random(rng *rand.Rand) string {
	names := Names()
	if len(names) == 0 {
		return ""
	}
	return names[rng.Intn(len(names))]
}
