package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/keydoor/config"
	"github.com/automoto/keydoor/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files.
const (
	GroupLevel            = "Level"
	GroupPlatforms        = "Platforms"
	GroupMovingPlatforms  = "MovingPlatforms"
	GroupFallingPlatforms = "FallingPlatforms"
	GroupHazards          = "Hazards"
	GroupBoxes            = "Boxes"
	GroupKey              = "Key"
	GroupDoor             = "Door"
	GroupPlayerSpawn      = "PlayerSpawn"
)

// LoadDefinition parses a TMX file into a level definition resolved against
// groundY. Geometry is authored against the groundY property of the single
// object in the Level group and shifted to the requested ground line. It takes
// an fs.FS so callers can pass embed.FS (client) or os.DirFS (server).
func LoadDefinition(fsys fs.FS, tmxPath string, groundY float64) (*Definition, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	def := &Definition{
		Name:    strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Profile: config.ProfileClassic,
		GroundY: groundY,
		Players: 2,
	}

	authoredGround := float64(levelMap.Height*levelMap.TileHeight) - float64(config.C.GroundOffset)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != GroupLevel || len(og.Objects) == 0 {
			continue
		}
		meta := og.Objects[0].Properties
		if g := meta.GetFloat("groundY"); g != 0 {
			authoredGround = g
		}
		if name := meta.GetString("name"); name != "" {
			def.Name = name
		}
		if profile := meta.GetString("profile"); profile != "" {
			def.Profile = profile
		}
		if n := meta.GetInt("players"); n > 0 {
			def.Players = n
		}
		def.World = meta.GetInt("world")
	}
	shift := groundY - authoredGround

	rect := func(o *tiled.Object) gamemath.Rect {
		return gamemath.Rect{X: o.X, Y: o.Y + shift, W: o.Width, H: o.Height}
	}

	var haveKey, haveDoor bool
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case GroupPlatforms:
				def.Platforms = append(def.Platforms, rect(o))
			case GroupMovingPlatforms:
				r := rect(o)
				mp := MovingPlatform{
					Rect:      r,
					StartX:    o.Properties.GetFloat("startX"),
					EndX:      o.Properties.GetFloat("endX"),
					Speed:     o.Properties.GetFloat("speed"),
					Direction: config.DirectionRight,
				}
				if o.Properties.GetInt("direction") < 0 {
					mp.Direction = config.DirectionLeft
				}
				if mp.EndX <= mp.StartX {
					return nil, fmt.Errorf("moving platform %d in %s: endX %.0f must exceed startX %.0f", o.ID, tmxPath, mp.EndX, mp.StartX)
				}
				def.MovingPlatforms = append(def.MovingPlatforms, mp)
			case GroupFallingPlatforms:
				def.FallingPlatforms = append(def.FallingPlatforms, rect(o))
			case GroupHazards:
				def.Hazards = append(def.Hazards, rect(o))
			case GroupBoxes:
				def.Boxes = append(def.Boxes, BoxDef{ID: len(def.Boxes) + 1, X: o.X, Y: o.Y + shift})
			case GroupKey:
				def.Key, haveKey = rect(o), true
			case GroupDoor:
				def.Door, haveDoor = rect(o), true
			case GroupPlayerSpawn:
				def.SpawnPoints = append(def.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y + shift,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if !haveKey || !haveDoor {
		return nil, fmt.Errorf("level %s: needs one %s and one %s object", tmxPath, GroupKey, GroupDoor)
	}
	if len(def.Platforms) == 0 {
		return nil, fmt.Errorf("level %s: no %s objects", tmxPath, GroupPlatforms)
	}

	// Spawns are assigned by authored index, then left-to-right.
	sort.SliceStable(def.SpawnPoints, func(i, j int) bool {
		a, b := def.SpawnPoints[i], def.SpawnPoints[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.X < b.X
	})

	return finish(def), nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads a
// definition for each, and returns a map keyed by stem name plus a sorted list
// of names.
func LoadAll(fsys fs.FS, levelsDir string, groundY float64) (map[string]*Definition, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Definition, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		def, err := LoadDefinition(fsys, path, groundY)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = def
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
