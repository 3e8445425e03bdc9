// Package tween interpolates scalar properties over time.
//
// A Tween is a plain record evaluated against an explicit time by a Group;
// nothing runs in the background, so ordering and cancellation are decided
// entirely by the caller's frame loop.
package tween

import "time"

// Tween moves a value from From to To between Start and Start+Duration.
type Tween struct {
	Start    time.Time
	Duration time.Duration
	From     float64
	To       float64
	Ease     Ease
	Apply    func(v float64) // Receives the interpolated value on every update
}

// Progress returns linear progress in [0, 1] at now.
func (tw *Tween) Progress(now time.Time) float64 {
	if now.Before(tw.Start) {
		return 0
	}
	if tw.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(tw.Start)) / float64(tw.Duration)
	if p > 1 {
		return 1
	}
	return p
}

// Value returns the eased value at now. Before Start it is From, after the
// end it is To.
func (tw *Tween) Value(now time.Time) float64 {
	p := tw.Progress(now)
	switch p {
	case 0:
		return tw.From
	case 1:
		return tw.To
	}
	ease := tw.Ease
	if ease == nil {
		ease = Default
	}
	return tw.From + (tw.To-tw.From)*ease(p)
}

// Started reports whether now has reached Start.
func (tw *Tween) Started(now time.Time) bool {
	return !now.Before(tw.Start)
}

// Done reports whether the tween has reached its end at now.
func (tw *Tween) Done(now time.Time) bool {
	return !now.Before(tw.End())
}

// End returns the time the tween finishes.
func (tw *Tween) End() time.Time {
	return tw.Start.Add(tw.Duration)
}
