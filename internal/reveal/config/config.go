// Package config centralizes all tunable reveal-effect parameters.
package config

import (
	"time"

	envconfig "github.com/tomz197/reveal/internal/config"
)

// Tile geometry in world units.
const (
	TileWidth     = 12.0 // Edge of the square tile face
	TileThickness = 3.0  // Depth along the view axis
)

// Camera
const (
	Perspective = 75.0 // Vertical field of view, degrees
	CameraZ     = 75.0 // Distance from the tile plane
	CameraNear  = 0.1
	CameraFar   = 1000.0
)

// Lighting
const (
	AmbientColor    = "#808080"
	PointLightColor = "#ffffff"
	PointLightZ     = 100.0
	TileColor       = "#ffffff"
)

// Page presentation
const (
	PageBackground = "#11111b"
	PageForeground = "#cdd6f4"
	PageAccent     = "#f5c2e7"
)

// Reveal animation timing
const (
	MinDelay       = 1 * time.Second // Per-tile random delay lower bound (inclusive)
	MaxDelay       = 2 * time.Second // Upper bound (exclusive)
	TweenDuration  = 2 * time.Second
	FadeLag        = 500 * time.Millisecond // Position and opacity start after the rotation
	ForwardOffset  = 80.0                   // Target z of the exploding tiles
	RevealDuration = 4500 * time.Millisecond
)

// Render loop
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Settings is the process-wide configuration, fixed at start.
type Settings struct {
	TileWidth     float64
	TileThickness float64
	Perspective   float64
	CameraZ       float64
	FPS           int
	Seed          int64 // Zero seeds from the clock
}

// Defaults returns Settings built from the constants above.
func Defaults() Settings {
	return Settings{
		TileWidth:     TileWidth,
		TileThickness: TileThickness,
		Perspective:   Perspective,
		CameraZ:       CameraZ,
		FPS:           TargetFPS,
	}
}

// WithDefaults returns s with every non-positive field except Seed replaced
// by its default.
func (s Settings) WithDefaults() Settings {
	d := Defaults()
	if s.TileWidth <= 0 {
		s.TileWidth = d.TileWidth
	}
	if s.TileThickness <= 0 {
		s.TileThickness = d.TileThickness
	}
	if s.Perspective <= 0 || s.Perspective >= 180 {
		s.Perspective = d.Perspective
	}
	if s.CameraZ <= 0 {
		s.CameraZ = d.CameraZ
	}
	if s.FPS <= 0 {
		s.FPS = d.FPS
	}
	return s
}

// FromEnv returns Defaults overridden by REVEAL_* environment variables.
// Non-positive values are ignored.
func FromEnv() Settings {
	s := Defaults()
	if v := envconfig.GetEnvFloat("REVEAL_TILE_WIDTH", 0); v > 0 {
		s.TileWidth = v
	}
	if v := envconfig.GetEnvFloat("REVEAL_FOV", 0); v > 0 && v < 180 {
		s.Perspective = v
	}
	if v := envconfig.GetEnvFloat("REVEAL_CAMERA_Z", 0); v > 0 {
		s.CameraZ = v
	}
	if v := envconfig.GetEnvInt("REVEAL_FPS", 0); v > 0 {
		s.FPS = v
	}
	s.Seed = envconfig.GetEnvInt64("REVEAL_SEED", 0)
	return s
}

// FrameTime returns the target duration of one frame.
func (s Settings) FrameTime() time.Duration {
	if s.FPS <= 0 {
		return TargetFrameTime
	}
	return time.Second / time.Duration(s.FPS)
}
