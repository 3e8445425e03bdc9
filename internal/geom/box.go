package geom

// Box is a shared axis-aligned box geometry centred on the origin.
// Tiles reference one Box and apply their own transform to it.
type Box struct {
	Width, Height, Depth float64
	Vertices             [8]Vec3
}

// Face indexes four vertices of a Box in counter-clockwise order when seen
// from outside, together with the outward normal.
type Face struct {
	Indices [4]int
	Normal  Vec3
}

// BoxFaces lists the six faces shared by every Box.
var BoxFaces = [6]Face{
	{Indices: [4]int{4, 5, 6, 7}, Normal: Vec3{0, 0, 1}},  // front
	{Indices: [4]int{1, 0, 3, 2}, Normal: Vec3{0, 0, -1}}, // back
	{Indices: [4]int{0, 4, 7, 3}, Normal: Vec3{-1, 0, 0}}, // left
	{Indices: [4]int{5, 1, 2, 6}, Normal: Vec3{1, 0, 0}},  // right
	{Indices: [4]int{7, 6, 2, 3}, Normal: Vec3{0, 1, 0}},  // top
	{Indices: [4]int{0, 1, 5, 4}, Normal: Vec3{0, -1, 0}}, // bottom
}

// NewBox creates box geometry with the given extents.
func NewBox(width, height, depth float64) *Box {
	w, h, d := width/2, height/2, depth/2
	return &Box{
		Width:  width,
		Height: height,
		Depth:  depth,
		Vertices: [8]Vec3{
			{-w, -h, -d}, // 0
			{w, -h, -d},  // 1
			{w, h, -d},   // 2
			{-w, h, -d},  // 3
			{-w, -h, d},  // 4
			{w, -h, d},   // 5
			{w, h, d},    // 6
			{-w, h, d},   // 7
		},
	}
}

// Transform returns the box vertices rotated by rot and moved to pos.
func (b *Box) Transform(pos Vec3, rot Euler) [8]Vec3 {
	var out [8]Vec3
	for i, v := range b.Vertices {
		if !rot.IsZero() {
			v = rot.Apply(v)
		}
		out[i] = v.Add(pos)
	}
	return out
}
