package core

import (
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/quai/assets"
	cfg "github.com/automoto/quai/config"
	"github.com/automoto/quai/shared/leveldata"
	"github.com/automoto/quai/systems/factory"
	"github.com/solarlune/resolv"
)

// ServerLevel holds the server's collision space and spawn layout for an arena.
type ServerLevel struct {
	Space  *resolv.Space
	Layout *leveldata.SpawnLayout
}

// NewServerLevel builds an empty arena space for layout. Enemy hit-zones and
// player footprints are added to it as they spawn.
func NewServerLevel(layout *leveldata.SpawnLayout) *ServerLevel {
	log.Printf("[server] loaded layout %s: %d spawn points in %d waves",
		layout.Name, len(layout.Points), layout.Waves)

	return &ServerLevel{
		Space:  factory.CreateSpace(),
		Layout: layout,
	}
}

// LoadServerLevel loads the layout at path from assetsDir, or from the
// layouts embedded in the binary when assetsDir is empty.
func LoadServerLevel(assetsDir, path string) (*ServerLevel, error) {
	var fsys fs.FS = assets.LevelsFS()
	if assetsDir != "" {
		fsys = os.DirFS(assetsDir)
	}

	layout, err := leveldata.LoadSpawnLayout(fsys, path, cfg.Arena.PixelsPerUnit)
	if err != nil {
		return nil, fmt.Errorf("load server level: %w", err)
	}
	return NewServerLevel(layout), nil
}
