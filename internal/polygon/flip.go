package polygon

import (
	"time"

	"github.com/jbeda/geom"

	"github.com/vovakirdan/flippy/internal/tween"
)

// Animation timing defaults.
const (
	FlipDuration      = 150 * time.Millisecond
	DisappearDuration = 250 * time.Millisecond
)

// EventFlipped is the completion event kind of an animated flip.
const EventFlipped tween.Kind = "polygon.flipped"

// Animator schedules point interpolations. *tween.Manager implements it.
type Animator interface {
	Animate(target *geom.Coord, to geom.Coord, d time.Duration, ev *tween.Event)
}

// RequestFlip starts an animated flip across the edge facing target.
// The polygon locks and every vertex is scheduled to move to its reflected
// position over d; only the last vertex carries the completion event. Once
// that event reaches Settle the polygon unlocks with its order restored.
// Returns false if the polygon is already locked.
func (p *Polygon) RequestFlip(target geom.Coord, anim Animator, d time.Duration) bool {
	if p.locked {
		return false
	}

	// Lock first so a second request can't interpolate from mid-flight values
	p.Lock()

	flipped := p.ReflectAcross(p.mustSelectEdge(target))

	last := len(p.verts) - 1
	for i := 0; i < last; i++ {
		anim.Animate(&p.verts[i], flipped[i], d, nil)
	}
	anim.Animate(&p.verts[last], flipped[last], d, &tween.Event{Kind: EventFlipped, Owner: p})

	return true
}

// Settle finishes an animated flip when ev is this polygon's flip completion:
// it unlocks, reverses the vertex order and recomputes the center.
// Returns true if the event was consumed.
func (p *Polygon) Settle(ev tween.Event) bool {
	if ev.Kind != EventFlipped || ev.Owner != p {
		return false
	}

	p.Unlock()
	p.ReverseOrder()
	p.updateCenter()
	return true
}

// RequestDisappear shrinks the polygon into its center over d. The polygon
// locks and stays locked. note is attached to every vertex task, so the caller
// receives one copy per vertex and must ignore the repeats.
func (p *Polygon) RequestDisappear(note tween.Event, anim Animator, d time.Duration) {
	p.Lock()

	center := p.center
	for i := range p.verts {
		anim.Animate(&p.verts[i], center, d, &note)
	}
}
