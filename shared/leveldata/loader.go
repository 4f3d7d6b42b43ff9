package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// EnemyLayer is the object group holding enemy spawn points.
const EnemyLayer = "Enemies"

// LoadSpawnLayout parses a TMX file and returns the spawn points of its
// Enemies object group. Object pixel coordinates map to world X/Z through
// pixelsPerUnit with the map center at the world origin; the optional
// "height" property (in world units) sets Y. It takes an fs.FS so callers can
// pass embed.FS (client) or os.DirFS (server).
func LoadSpawnLayout(fsys fs.FS, tmxPath string, pixelsPerUnit int) (*SpawnLayout, error) {
	if pixelsPerUnit <= 0 {
		return nil, fmt.Errorf("load TMX %s: pixels per unit %d must be positive", tmxPath, pixelsPerUnit)
	}
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	ppu := float64(pixelsPerUnit)
	halfW := float64(levelMap.Width*levelMap.TileWidth) / 2
	halfH := float64(levelMap.Height*levelMap.TileHeight) / 2

	layout := &SpawnLayout{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != EnemyLayer {
			continue
		}
		for _, o := range og.Objects {
			archetype := strings.ToUpper(o.Properties.GetString("archetype"))
			if archetype == "" {
				return nil, fmt.Errorf("load TMX %s: object %d has no archetype", tmxPath, o.ID)
			}
			wave := o.Properties.GetInt("wave")
			if wave < 0 {
				return nil, fmt.Errorf("load TMX %s: object %d has negative wave %d", tmxPath, o.ID, wave)
			}
			layout.Points = append(layout.Points, SpawnPoint{
				Archetype: archetype,
				X:         (o.X - halfW) / ppu,
				Y:         o.Properties.GetFloat("height"),
				Z:         (o.Y - halfH) / ppu,
				Wave:      wave,
			})
			if wave+1 > layout.Waves {
				layout.Waves = wave + 1
			}
		}
	}

	// Stable order: by wave, then left-to-right
	sort.SliceStable(layout.Points, func(i, j int) bool {
		a, b := layout.Points[i], layout.Points[j]
		if a.Wave != b.Wave {
			return a.Wave < b.Wave
		}
		return a.X < b.X
	})

	return layout, nil
}

// LoadAllLayouts discovers all .tmx files in levelsDir within fsys, loads the
// spawn layout of each, and returns a map keyed by stem name plus a sorted
// list of names.
func LoadAllLayouts(fsys fs.FS, levelsDir string, pixelsPerUnit int) (map[string]*SpawnLayout, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	layouts := make(map[string]*SpawnLayout, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		layout, err := LoadSpawnLayout(fsys, path, pixelsPerUnit)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		layouts[layout.Name] = layout
		names = append(names, layout.Name)
	}

	sort.Strings(names)
	return layouts, names, nil
}
