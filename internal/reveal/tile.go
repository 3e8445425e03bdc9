package reveal

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/reveal/internal/geom"
)

// Material is the per-tile surface. Tiles own their material so each can
// fade independently.
type Material struct {
	Color   colorful.Color
	Opacity float64
}

// Tile is one box of the reveal grid.
type Tile struct {
	Position geom.Vec3
	Rotation geom.Euler
	Material Material

	Geometry *geom.Box // Shared by every tile
	home     geom.Vec3 // Position assigned by the grid
}

// NewTile creates an opaque tile at pos using the shared geometry.
func NewTile(geometry *geom.Box, pos geom.Vec3, color colorful.Color) *Tile {
	return &Tile{
		Position: pos,
		Material: Material{Color: color, Opacity: 1},
		Geometry: geometry,
		home:     pos,
	}
}

// Reset returns the tile to its resting state: no rotation, fully opaque,
// on the z=0 plane. X and Y are left untouched.
func (t *Tile) Reset() {
	t.Rotation = geom.Euler{}
	t.Material.Opacity = 1
	t.Position.Z = 0
}

// Home returns the position the grid assigned to the tile.
func (t *Tile) Home() geom.Vec3 {
	return t.home
}

// Visible reports whether the tile contributes to the frame.
func (t *Tile) Visible() bool {
	return t.Material.Opacity > 0
}
