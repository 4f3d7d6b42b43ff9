// Package assets embeds the arena layouts shipped with the game.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/quai/config"
	"github.com/automoto/quai/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// DefaultLayout is the layout loaded when none is selected.
const DefaultLayout = "arena"

// LevelsFS exposes the embedded files rooted above levels/ so paths such as
// "levels/arena.tmx" resolve.
func LevelsFS() fs.FS {
	return assetFS
}

// MustLoadLayouts parses every embedded layout. It panics on a malformed
// file since the levels ship inside the binary.
func MustLoadLayouts() map[string]*leveldata.SpawnLayout {
	layouts, _, err := leveldata.LoadAllLayouts(assetFS, "levels", config.Arena.PixelsPerUnit)
	if err != nil {
		panic(fmt.Sprintf("Failed to load embedded layouts: %v", err))
	}
	return layouts
}

// MustLoadLayout returns the embedded layout with the given stem name.
func MustLoadLayout(name string) *leveldata.SpawnLayout {
	layout, ok := MustLoadLayouts()[name]
	if !ok {
		panic(fmt.Sprintf("No embedded layout named %q", name))
	}
	return layout
}
