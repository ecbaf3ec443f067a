// Package tween provides a frame-driven interpolation service for 2D points,
// built on gween. Tasks move a single point from its current position to a
// destination over a fixed duration. Completion is reported as Events returned from Update, so the
// frame loop decides what to do with them instead of receiving callbacks.
package tween

import (
	"time"

	"github.com/jbeda/geom"
	"github.com/tanema/gween"
)

// Kind identifies what a completion event means to its consumer.
type Kind string

// Event is delivered by Update when a task carrying it finishes.
// Owner identifies the object the event belongs to (e.g. a polygon).
type Event struct {
	Kind  Kind
	Owner any
}

// task interpolates one point, one gween tween per axis.
type task struct {
	target   *geom.Coord
	x, y     *gween.Tween
	to       geom.Coord
	duration time.Duration
	elapsed  time.Duration
	event    *Event
}

// Manager owns all in-flight tasks and advances them once per frame.
// It is not safe for concurrent use; the game loop is single-threaded.
type Manager struct {
	tasks  []*task
	easing Easing
}

// NewManager creates a manager using the given easing curve.
// A nil easing falls back to EaseInOutQuad.
func NewManager(easing Easing) *Manager {
	if easing == nil {
		easing = EaseInOutQuad
	}
	return &Manager{easing: easing}
}

// Animate schedules target to move to `to` over d.
// The start position is captured now. If ev is non-nil it is returned from the
// Update call in which this task finishes.
func (m *Manager) Animate(target *geom.Coord, to geom.Coord, d time.Duration, ev *Event) {
	var carried *Event
	if ev != nil {
		e := *ev
		carried = &e
	}
	secs := float32(d.Seconds())
	m.tasks = append(m.tasks, &task{
		target:   target,
		x:        gween.New(float32(target.X), float32(to.X), secs, m.easing),
		y:        gween.New(float32(target.Y), float32(to.Y), secs, m.easing),
		to:       to,
		duration: d,
		event:    carried,
	})
}

// Update advances every task by dt and returns the events of tasks that
// finished during this step, in scheduling order. All point writes of the step
// are done before the events are returned.
func (m *Manager) Update(dt time.Duration) []Event {
	if len(m.tasks) == 0 {
		return nil
	}

	var events []Event
	remaining := m.tasks[:0]

	step := float32(dt.Seconds())
	for _, t := range m.tasks {
		t.elapsed += dt

		// Completion follows the exact duration, not gween's float32 clock
		if t.elapsed >= t.duration {
			// Snap exactly onto the destination
			*t.target = t.to
			if t.event != nil {
				events = append(events, *t.event)
			}
			continue
		}

		x, _ := t.x.Update(step)
		y, _ := t.y.Update(step)
		*t.target = geom.Coord{X: float64(x), Y: float64(y)}
		remaining = append(remaining, t)
	}

	// Drop references held by finished tasks
	for i := len(remaining); i < len(m.tasks); i++ {
		m.tasks[i] = nil
	}
	m.tasks = remaining

	return events
}

// Len returns the number of tasks still running.
func (m *Manager) Len() int {
	return len(m.tasks)
}

// Idle reports whether no tasks are running.
func (m *Manager) Idle() bool {
	return len(m.tasks) == 0
}

// Clear drops all running tasks without finishing them.
// Points are left where the last Update put them and no events fire.
func (m *Manager) Clear() {
	for i := range m.tasks {
		m.tasks[i] = nil
	}
	m.tasks = m.tasks[:0]
}
