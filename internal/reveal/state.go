// Package reveal renders the tile reveal effect: a grid of boxes covering the
// viewport that explode towards the camera and fade, uncovering the page.
package reveal

import (
	"github.com/tomz197/reveal/internal/draw"
	"github.com/tomz197/reveal/internal/geom"
	"github.com/tomz197/reveal/internal/window"
)

// SceneState is everything the Manager and the Animator share.
// It is owned by one Manager and mutated only from its frame loop.
type SceneState struct {
	Size   window.Size  // Window size at the last resize
	Camera *geom.Camera // Perspective camera looking at the tile plane
	Canvas *draw.Canvas // Render surface
	Scene  *Scene
	Page   *Page

	// World-space rectangle visible on the z=0 plane.
	WorldWidth  float64
	WorldHeight float64
}

// Tiles returns the tiles of the current scene.
func (s *SceneState) Tiles() []*Tile {
	if s.Scene == nil {
		return nil
	}
	return s.Scene.Tiles
}
