package geom

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestViewportWorldSize(t *testing.T) {
	Convey("Viewport world size follows fov and aspect", t, func() {
		sizes := [][2]float64{{1024, 768}, {1920, 1080}, {80, 48}, {1, 1}, {3, 1000}}
		for _, s := range sizes {
			aspect := s[0] / s[1]
			w, h := ViewportWorldSize(75, aspect, 75)
			So(w, ShouldBeGreaterThan, 0)
			So(h, ShouldBeGreaterThan, 0)
			So(w/h, ShouldAlmostEqual, aspect, 1e-9)
		}

		Convey("Height does not depend on the sign of the distance", func() {
			_, h1 := ViewportWorldSize(75, 1, 75)
			_, h2 := ViewportWorldSize(75, 1, -75)
			So(h1, ShouldAlmostEqual, h2, 1e-9)
			So(h1, ShouldAlmostEqual, 2*math.Tan(Radians(37.5))*75, 1e-9)
		})
	})
}

func TestCameraProject(t *testing.T) {
	Convey("Camera projection", t, func() {
		cam := NewCamera(75, 4.0/3.0, 0.1, 1000, 75)
		w, h := ViewportWorldSize(cam.FOV, cam.Aspect, cam.Position.Z)

		Convey("The visible rectangle at z=0 maps to the NDC edges", func() {
			x, y, ok := cam.Project(Vec3{X: w / 2, Y: h / 2})
			So(ok, ShouldBeTrue)
			So(x, ShouldAlmostEqual, 1, 1e-9)
			So(y, ShouldAlmostEqual, 1, 1e-9)

			x, y, ok = cam.Project(Vec3{X: -w / 2, Y: -h / 2})
			So(ok, ShouldBeTrue)
			So(x, ShouldAlmostEqual, -1, 1e-9)
			So(y, ShouldAlmostEqual, -1, 1e-9)
		})

		Convey("Points behind the near plane are rejected", func() {
			_, _, ok := cam.Project(Vec3{Z: 80})
			So(ok, ShouldBeFalse)
			_, _, ok = cam.Project(Vec3{Z: 74.95})
			So(ok, ShouldBeFalse)
		})

		Convey("Aspect changes take effect after UpdateProjection", func() {
			cam.Aspect = 16.0 / 9.0
			cam.UpdateProjection()
			w, _ := ViewportWorldSize(cam.FOV, cam.Aspect, cam.Position.Z)
			x, _, ok := cam.Project(Vec3{X: w / 2})
			So(ok, ShouldBeTrue)
			So(x, ShouldAlmostEqual, 1, 1e-9)
		})
	})
}

func TestRotation(t *testing.T) {
	Convey("Euler rotation", t, func() {
		v := Vec3{X: 1}

		Convey("Quarter turn around Z maps X onto Y", func() {
			r := Euler{Z: math.Pi / 2}.Apply(v)
			So(r.X, ShouldAlmostEqual, 0, 1e-9)
			So(r.Y, ShouldAlmostEqual, 1, 1e-9)
		})

		Convey("Rotation preserves length", func() {
			r := Euler{X: 0.3, Y: 1.7, Z: 4.2}.Apply(Vec3{1, 2, 3})
			So(r.Length(), ShouldAlmostEqual, Vec3{1, 2, 3}.Length(), 1e-9)
		})
	})
}

func TestBox(t *testing.T) {
	Convey("Box geometry", t, func() {
		b := NewBox(12, 12, 3)

		Convey("Unrotated vertices are offset by the position", func() {
			vs := b.Transform(Vec3{X: 10, Y: -5}, Euler{})
			So(vs[0], ShouldResemble, Vec3{4, -11, -1.5})
			So(vs[6], ShouldResemble, Vec3{16, 1, 1.5})
		})

		Convey("Face normals point away from the centre", func() {
			for _, f := range BoxFaces {
				var c Vec3
				for _, i := range f.Indices {
					c = c.Add(b.Vertices[i])
				}
				c = c.Scale(0.25)
				So(c.Dot(f.Normal), ShouldBeGreaterThan, 0)
			}
		})
	})
}
