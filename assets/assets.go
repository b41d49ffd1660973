package assets

import (
	"embed"
	"io/fs"
	"log"

	"github.com/automoto/keydoor/shared/leveldata"
)

var (
	//go:embed levels/*.tmx
	assetFS embed.FS
)

const levelsDir = "levels"

// LevelLoader resolves playable levels. Numbered worlds come from TMX files
// whose Level object sets a matching world property, falling back to the
// built-in definitions. TMX levels without a world number are extras.
type LevelLoader struct {
	groundY float64
	levels  map[string]*leveldata.Definition
	names   []string
}

// NewLevelLoader loads the embedded TMX levels against groundY.
func NewLevelLoader(groundY float64) *LevelLoader {
	return newLevelLoader(assetFS, groundY)
}

func newLevelLoader(fsys fs.FS, groundY float64) *LevelLoader {
	l := &LevelLoader{groundY: groundY}
	levels, names, err := leveldata.LoadAll(fsys, levelsDir, groundY)
	if err != nil {
		log.Printf("Warning: TMX levels unavailable, using built-in worlds only: %v", err)
		return l
	}
	l.levels, l.names = levels, names
	return l
}

// World returns the definition for a numbered world.
func (l *LevelLoader) World(n int) (*leveldata.Definition, error) {
	for _, name := range l.names {
		if def := l.levels[name]; def.World == n {
			return def, nil
		}
	}
	return leveldata.ByNumber(n, l.groundY)
}

// Extras lists the TMX levels outside the numbered progression, by file stem.
func (l *LevelLoader) Extras() []*leveldata.Definition {
	var out []*leveldata.Definition
	for _, name := range l.names {
		if def := l.levels[name]; def.World == 0 {
			out = append(out, def)
		}
	}
	return out
}
