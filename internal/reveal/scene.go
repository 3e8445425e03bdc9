package reveal

import (
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/reveal/internal/draw"
	"github.com/tomz197/reveal/internal/geom"
)

// AmbientLight lights every face equally.
type AmbientLight struct {
	Color colorful.Color
}

// PointLight lights faces by the cosine of the angle to its position.
// There is no distance attenuation.
type PointLight struct {
	Color    colorful.Color
	Position geom.Vec3
}

// Scene holds everything drawn each frame.
type Scene struct {
	Ambient AmbientLight
	Lights  []PointLight
	Tiles   []*Tile

	faces []litFace // Reused between frames
}

// litFace is a visible, shaded face waiting for the painter's sort.
type litFace struct {
	points [4]draw.Point
	depth  float64
	color  colorful.Color
	alpha  float64
}

// Add appends tiles to the scene.
func (s *Scene) Add(tiles ...*Tile) {
	s.Tiles = append(s.Tiles, tiles...)
}

// Shade returns the Lambert colour of a surface with the given base colour
// and normal at point p.
func (s *Scene) Shade(base colorful.Color, normal, p geom.Vec3) colorful.Color {
	r, g, b := s.Ambient.Color.R, s.Ambient.Color.G, s.Ambient.Color.B
	for _, l := range s.Lights {
		diffuse := math.Max(0, normal.Dot(l.Position.Sub(p).Normalize()))
		r += l.Color.R * diffuse
		g += l.Color.G * diffuse
		b += l.Color.B * diffuse
	}
	return colorful.Color{R: base.R * r, G: base.G * g, B: base.B * b}.Clamped()
}

// Render draws all visible tile faces onto c as seen from cam, far faces
// first. Faces turned away from the camera or crossing the near plane are
// skipped.
func (s *Scene) Render(c *draw.Canvas, cam *geom.Camera) {
	s.faces = s.faces[:0]

	for _, t := range s.Tiles {
		if !t.Visible() || t.Geometry == nil {
			continue
		}
		verts := t.Geometry.Transform(t.Position, t.Rotation)

	faces:
		for _, f := range geom.BoxFaces {
			var center geom.Vec3
			for _, i := range f.Indices {
				center = center.Add(verts[i])
			}
			center = center.Scale(0.25)

			normal := t.Rotation.Apply(f.Normal)
			if normal.Dot(cam.Position.Sub(center)) <= 0 {
				continue
			}

			var lf litFace
			for k, i := range f.Indices {
				x, y, ok := cam.Project(verts[i])
				if !ok {
					// Not clipped: a tile flying past the camera drops out
					// whole, by which point it has almost faded.
					continue faces
				}
				lf.points[k] = c.NDCToPixel(x, y)
			}
			lf.depth = cam.Depth(center)
			lf.color = s.Shade(t.Material.Color, normal, center)
			lf.alpha = t.Material.Opacity
			s.faces = append(s.faces, lf)
		}
	}

	sort.SliceStable(s.faces, func(i, j int) bool {
		return s.faces[i].depth > s.faces[j].depth
	})

	for i := range s.faces {
		f := &s.faces[i]
		pts := c.BorrowPoints(len(f.points))
		copy(pts, f.points[:])
		c.FillPolygon(pts, f.color, f.alpha)
	}
}
