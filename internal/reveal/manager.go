package reveal

import (
	"errors"
	"io"
	"math/rand"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/reveal/internal/clock"
	"github.com/tomz197/reveal/internal/draw"
	"github.com/tomz197/reveal/internal/geom"
	"github.com/tomz197/reveal/internal/reveal/config"
	"github.com/tomz197/reveal/internal/window"
)

// ErrNotInitialized is returned when a Manager is used before Initialize.
var ErrNotInitialized = errors.New("reveal: manager not initialized")

// Options configures a Manager.
type Options struct {
	Settings config.Settings
	Clock    clock.Clock
	Rand     *rand.Rand
	Page     *Page
}

// Manager owns the render surface, camera, lights and tile grid, and reacts
// to the window's load and resize events.
type Manager struct {
	settings config.Settings
	clock    clock.Clock
	win      *window.Window
	state    *SceneState
	animator *Animator

	geometry   *geom.Box
	tileColor  colorful.Color
	background colorful.Color

	unsubscribe []func()
	running     bool
}

// NewManager creates a manager for win. Unset settings fall back to their
// defaults; a nil clock or generator to the real clock and a time-seeded one.
func NewManager(win *window.Window, opts Options) *Manager {
	opts.Settings = opts.Settings.WithDefaults()
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Rand == nil {
		seed := opts.Settings.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		opts.Rand = rand.New(rand.NewSource(seed))
	}

	state := &SceneState{Page: opts.Page}
	return &Manager{
		settings:   opts.Settings,
		clock:      opts.Clock,
		win:        win,
		state:      state,
		animator:   NewAnimator(state, opts.Rand),
		tileColor:  mustHex(config.TileColor),
		background: mustHex(config.PageBackground),
	}
}

// State returns the shared scene state.
func (m *Manager) State() *SceneState {
	return m.state
}

// Animator returns the reveal animator.
func (m *Manager) Animator() *Animator {
	return m.animator
}

// Running reports whether the render loop should keep going.
func (m *Manager) Running() bool {
	return m.running
}

// Initialize creates the canvas sized to the window, the camera, an empty
// scene and the shared box geometry, and subscribes to load and resize.
func (m *Manager) Initialize() {
	size := m.win.Size()
	m.state.Size = size
	m.state.Canvas = draw.NewCanvas(size.Cols, size.Rows, m.background)
	m.state.Camera = geom.NewCamera(
		m.settings.Perspective,
		size.Aspect(),
		config.CameraNear,
		config.CameraFar,
		m.settings.CameraZ,
	)
	m.state.Scene = &Scene{}
	m.geometry = geom.NewBox(m.settings.TileWidth, m.settings.TileWidth, m.settings.TileThickness)
	m.updateWorldSize()
	if m.state.Page != nil {
		m.state.Page.Resize(size.Cols, size.Rows)
	}

	m.unsubscribe = append(m.unsubscribe,
		m.win.On(window.EventLoad, func(window.Size) { m.BuildScene() }),
		m.win.On(window.EventResize, m.OnResize),
	)
	m.running = true
}

// OnResize updates the camera projection, the canvas and the viewport world
// size for the new window size. The tile grid is left as it is.
func (m *Manager) OnResize(size window.Size) {
	m.state.Size = size
	m.state.Camera.Aspect = size.Aspect()
	m.state.Camera.UpdateProjection()
	m.state.Canvas.Resize(size.Cols, size.Rows)
	if m.state.Page != nil {
		m.state.Page.Resize(size.Cols, size.Rows)
	}
	m.updateWorldSize()
}

func (m *Manager) updateWorldSize() {
	m.state.WorldWidth, m.state.WorldHeight = geom.ViewportWorldSize(
		m.state.Camera.FOV,
		m.state.Camera.Aspect,
		m.settings.CameraZ,
	)
}

// BuildScene replaces the scene with a lit one, builds the tile grid and
// starts the first reveal run.
func (m *Manager) BuildScene() {
	m.OnResize(m.win.Size())

	m.state.Scene = &Scene{
		Ambient: AmbientLight{Color: mustHex(config.AmbientColor)},
		Lights: []PointLight{{
			Color:    mustHex(config.PointLightColor),
			Position: geom.Vec3{Z: config.PointLightZ},
		}},
	}
	m.InitObjects()
	m.animator.Start(m.clock.Now())
}

// InitObjects fills the scene with a grid of tiles covering the viewport
// world rectangle and marks the page loaded.
func (m *Manager) InitObjects() {
	tw := m.settings.TileWidth
	nx, ny := GridSize(m.state.WorldWidth, m.state.WorldHeight, tw)

	tiles := make([]*Tile, 0, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			pos := TileCenter(i, j, m.state.WorldWidth, m.state.WorldHeight, tw)
			tiles = append(tiles, NewTile(m.geometry, pos, m.tileColor))
		}
	}
	m.state.Scene.Tiles = nil
	m.state.Scene.Add(tiles...)

	if m.state.Page != nil {
		m.state.Page.Loaded = true
	}
}

// Frame advances the animation to the clock's current time and redraws the
// scene onto the canvas.
func (m *Manager) Frame() error {
	if m.state.Canvas == nil {
		return ErrNotInitialized
	}
	m.animator.Update(m.clock.Now())
	m.state.Canvas.Clear()
	m.state.Scene.Render(m.state.Canvas, m.state.Camera)
	return nil
}

// Render writes the changed cells of the last frame to w, with the page
// showing through uncovered cells.
func (m *Manager) Render(w io.Writer) error {
	if m.state.Canvas == nil {
		return ErrNotInitialized
	}
	var overlay draw.Overlay
	if m.state.Page != nil {
		overlay = m.state.Page
	}
	return m.state.Canvas.Render(w, overlay)
}

// Stop ends the render loop after the current frame.
func (m *Manager) Stop() {
	m.running = false
}

// Teardown unsubscribes from the window and stops the loop.
func (m *Manager) Teardown() {
	for _, off := range m.unsubscribe {
		off()
	}
	m.unsubscribe = nil
	m.running = false
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
