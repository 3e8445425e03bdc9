package reveal

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/reveal/internal/geom"
	"github.com/tomz197/reveal/internal/reveal/config"
	"github.com/tomz197/reveal/internal/tween"
)

// Phase is the state of the current reveal run.
type Phase int

const (
	PhaseIdle      Phase = iota // No run started yet
	PhaseAnimating              // Tiles are exploding
	PhaseRevealed               // The reveal timer has fired
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnimating:
		return "animating"
	case PhaseRevealed:
		return "revealed"
	}
	return "unknown"
}

// Plan is the randomized schedule of one tile in one run.
type Plan struct {
	Delay  time.Duration // Start of the rotation, relative to the run
	Target geom.Euler    // Rotation the tile spins to
}

// Animator drives the explode-and-fade run over the scene's tiles.
type Animator struct {
	state  *SceneState
	rng    *rand.Rand
	tweens tween.Group

	phase   Phase
	started time.Time
	plans   []Plan

	// OnRevealed is called once per run when the reveal timer fires.
	OnRevealed func()
}

// NewAnimator creates an animator over state drawing randomness from rng.
func NewAnimator(state *SceneState, rng *rand.Rand) *Animator {
	return &Animator{state: state, rng: rng}
}

// Phase returns the current phase.
func (a *Animator) Phase() Phase {
	return a.phase
}

// Plans returns the schedule drawn by the latest Start, one per tile.
func (a *Animator) Plans() []Plan {
	return a.plans
}

// Pending returns the number of tweens that have not finished.
func (a *Animator) Pending() int {
	return a.tweens.Len()
}

// Start resets every tile and schedules a new run beginning at now.
// Tweens and the reveal timer of a previous run are cancelled.
func (a *Animator) Start(now time.Time) {
	a.tweens.Clear()
	a.started = now
	a.phase = PhaseAnimating
	if a.state.Page != nil {
		a.state.Page.Revealed = false
	}

	tiles := a.state.Tiles()
	a.plans = make([]Plan, 0, len(tiles))
	for _, t := range tiles {
		t.Reset()
	}

	for _, t := range tiles {
		plan := Plan{
			Delay: config.MinDelay + time.Duration(a.rng.Float64()*float64(config.MaxDelay-config.MinDelay)),
			Target: geom.Euler{
				X: a.rng.Float64() * 2 * math.Pi,
				Y: a.rng.Float64() * 2 * math.Pi,
				Z: a.rng.Float64() * 2 * math.Pi,
			},
		}
		a.plans = append(a.plans, plan)
		a.schedule(t, now, plan)
	}
}

// schedule adds the rotation, position and opacity tweens of one tile.
func (a *Animator) schedule(t *Tile, now time.Time, plan Plan) {
	spin := now.Add(plan.Delay)
	fly := spin.Add(config.FadeLag)

	a.tweens.Add(&tween.Tween{
		Start: spin, Duration: config.TweenDuration, To: plan.Target.X,
		Apply: func(v float64) { t.Rotation.X = v },
	})
	a.tweens.Add(&tween.Tween{
		Start: spin, Duration: config.TweenDuration, To: plan.Target.Y,
		Apply: func(v float64) { t.Rotation.Y = v },
	})
	a.tweens.Add(&tween.Tween{
		Start: spin, Duration: config.TweenDuration, To: plan.Target.Z,
		Apply: func(v float64) { t.Rotation.Z = v },
	})
	a.tweens.Add(&tween.Tween{
		Start: fly, Duration: config.TweenDuration, To: config.ForwardOffset,
		Ease:  tween.QuadOut,
		Apply: func(v float64) { t.Position.Z = v },
	})
	a.tweens.Add(&tween.Tween{
		Start: fly, Duration: config.TweenDuration, From: 1, To: 0,
		Apply: func(v float64) { t.Material.Opacity = v },
	})
}

// Update advances all tweens to now and fires the reveal timer once it has
// elapsed.
func (a *Animator) Update(now time.Time) {
	a.tweens.Update(now)

	if a.phase != PhaseAnimating || now.Sub(a.started) < config.RevealDuration {
		return
	}
	a.phase = PhaseRevealed
	if a.state.Page != nil {
		a.state.Page.Revealed = true
	}
	if a.OnRevealed != nil {
		a.OnRevealed()
	}
}
