package reveal

import (
	"math"

	"github.com/tomz197/reveal/internal/geom"
)

// GridSize returns the number of tile columns and rows needed to cover a
// worldWidth x worldHeight rectangle with square tiles of edge tileWidth.
// One extra tile per axis covers the partial tiles at the far edges.
func GridSize(worldWidth, worldHeight, tileWidth float64) (nx, ny int) {
	if tileWidth <= 0 {
		return 0, 0
	}
	nx = int(math.Round(worldWidth/tileWidth)) + 1
	ny = int(math.Round(worldHeight/tileWidth)) + 1
	return nx, ny
}

// TileCenter returns the centre of tile (i, j). Tile (0, 0) is centred on
// the bottom-left corner of the world rectangle.
func TileCenter(i, j int, worldWidth, worldHeight, tileWidth float64) geom.Vec3 {
	return geom.Vec3{
		X: -worldWidth/2 + float64(i)*tileWidth,
		Y: -worldHeight/2 + float64(j)*tileWidth,
	}
}
