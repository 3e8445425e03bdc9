package geom

import "math"

// Camera is a perspective camera on the +Z axis looking towards -Z.
type Camera struct {
	FOV      float64 // Vertical field of view in degrees
	Aspect   float64 // Width / height
	Near     float64
	Far      float64
	Position Vec3

	focal float64 // 1 / tan(fov/2), refreshed by UpdateProjection
}

// NewCamera creates a camera at distance z from the origin.
func NewCamera(fov, aspect, near, far, z float64) *Camera {
	c := &Camera{
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
		Position: Vec3{Z: z},
	}
	c.UpdateProjection()
	return c
}

// UpdateProjection recomputes the cached projection after FOV or Aspect change.
func (c *Camera) UpdateProjection() {
	c.focal = 1 / math.Tan(Radians(c.FOV)/2)
}

// Depth returns the distance of p in front of the camera along the view axis.
func (c *Camera) Depth(p Vec3) float64 {
	return c.Position.Z - p.Z
}

// Project maps p to normalized device coordinates in [-1, 1] on both axes
// (Y up). ok is false when p lies outside the near/far range.
func (c *Camera) Project(p Vec3) (x, y float64, ok bool) {
	depth := c.Depth(p)
	if depth < c.Near || depth > c.Far {
		return 0, 0, false
	}
	rel := p.Sub(c.Position)
	x = rel.X / depth * c.focal / c.Aspect
	y = rel.Y / depth * c.focal
	return x, y, true
}

// ViewportWorldSize returns the world-space width and height visible at the
// given distance from a camera with vertical field of view fov (degrees).
func ViewportWorldSize(fov, aspect, distance float64) (width, height float64) {
	height = 2 * math.Tan(Radians(fov)/2) * math.Abs(distance)
	width = height * aspect
	return width, height
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
