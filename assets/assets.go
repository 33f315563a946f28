package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/punkpark/shared/leveldata"
)

// LevelsDir is the directory of the embedded TMX levels.
const LevelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadLevels parses every embedded level. Names are sorted.
func LoadLevels() (map[string]*leveldata.CollisionData, []string, error) {
	levels, names, err := leveldata.LoadAllLevels(assetFS, LevelsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load embedded levels: %w", err)
	}
	return levels, names, nil
}

// MustLoadLevels is LoadLevels for scene setup, where a broken build has no
// way to continue.
func MustLoadLevels() (map[string]*leveldata.CollisionData, []string) {
	levels, names, err := LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels, names
}
