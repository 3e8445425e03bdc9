package tween

import "time"

// Group updates a set of tweens together.
type Group struct {
	tweens []*Tween
}

// Add schedules tw. It is applied on the first Update at or after its start.
func (g *Group) Add(tw *Tween) {
	g.tweens = append(g.tweens, tw)
}

// Update applies every started tween at now and drops the finished ones.
// A finished tween gets a final Apply with its To value before removal.
func (g *Group) Update(now time.Time) {
	n := 0
	for _, tw := range g.tweens {
		if tw.Started(now) && tw.Apply != nil {
			tw.Apply(tw.Value(now))
		}
		if tw.Done(now) {
			continue
		}
		g.tweens[n] = tw
		n++
	}
	clear(g.tweens[n:])
	g.tweens = g.tweens[:n]
}

// Clear cancels all pending tweens without applying them.
func (g *Group) Clear() {
	clear(g.tweens)
	g.tweens = g.tweens[:0]
}

// Len returns the number of tweens still pending.
func (g *Group) Len() int {
	return len(g.tweens)
}
