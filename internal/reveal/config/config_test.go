package config

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSettings(t *testing.T) {
	Convey("Defaults match the constants", t, func() {
		s := Defaults()
		So(s.TileWidth, ShouldEqual, TileWidth)
		So(s.CameraZ, ShouldEqual, CameraZ)
		So(s.FrameTime(), ShouldEqual, TargetFrameTime)
	})

	Convey("Environment overrides", t, func() {
		t.Setenv("REVEAL_TILE_WIDTH", "8")
		t.Setenv("REVEAL_FOV", "200")
		t.Setenv("REVEAL_FPS", "30")
		t.Setenv("REVEAL_SEED", "99")
		s := FromEnv()
		So(s.TileWidth, ShouldEqual, 8)
		So(s.Perspective, ShouldEqual, Perspective)
		So(s.FrameTime(), ShouldEqual, time.Second/30)
		So(s.Seed, ShouldEqual, int64(99))
	})

	Convey("Unset fields fall back to their defaults", t, func() {
		s := Settings{Seed: 7, CameraZ: 50}.WithDefaults()
		So(s.Seed, ShouldEqual, int64(7))
		So(s.CameraZ, ShouldEqual, 50)
		So(s.TileWidth, ShouldEqual, TileWidth)
		So(s.TileThickness, ShouldEqual, TileThickness)
		So(s.Perspective, ShouldEqual, Perspective)
		So(s.FPS, ShouldEqual, TargetFPS)
		So(Settings{}.WithDefaults(), ShouldResemble, Defaults())
	})

	Convey("The reveal timer outlasts the slowest tile", t, func() {
		So(MaxDelay+FadeLag+TweenDuration, ShouldBeLessThanOrEqualTo, RevealDuration)
	})
}
