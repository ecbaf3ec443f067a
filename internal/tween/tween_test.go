package tween

import (
	"math"
	"testing"
	"time"

	"github.com/jbeda/geom"
)

const frame = time.Second / 60

func TestAnimateReachesTarget(t *testing.T) {
	m := NewManager(Linear)
	p := geom.Coord{X: 0, Y: 0}

	m.Animate(&p, geom.Coord{X: 10, Y: -20}, 150*time.Millisecond, nil)

	for i := 0; i < 20 && !m.Idle(); i++ {
		m.Update(frame)
	}

	if !m.Idle() {
		t.Fatalf("Len() = %d after 20 frames, expected 0", m.Len())
	}
	if p.X != 10 || p.Y != -20 {
		t.Errorf("point = (%v, %v), expected (10, -20)", p.X, p.Y)
	}
}

func TestAnimateIntermediateLinear(t *testing.T) {
	m := NewManager(Linear)
	p := geom.Coord{X: 0, Y: 0}

	m.Animate(&p, geom.Coord{X: 100, Y: 0}, 100*time.Millisecond, nil)
	m.Update(25 * time.Millisecond)

	if math.Abs(p.X-25) > 1e-3 {
		t.Errorf("after 25%% of duration X = %v, expected 25", p.X)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", m.Len())
	}
}

func TestEventFiresOnce(t *testing.T) {
	m := NewManager(nil)
	owner := &struct{ name string }{"shape"}
	a := geom.Coord{}
	b := geom.Coord{}

	m.Animate(&a, geom.Coord{X: 1}, 50*time.Millisecond, nil)
	m.Animate(&b, geom.Coord{X: 2}, 50*time.Millisecond, &Event{Kind: "done", Owner: owner})

	var fired []Event
	for i := 0; i < 10; i++ {
		fired = append(fired, m.Update(frame)...)
	}

	if len(fired) != 1 {
		t.Fatalf("got %d events, expected 1", len(fired))
	}
	if fired[0].Kind != "done" || fired[0].Owner != owner {
		t.Errorf("event = %+v, expected kind done owned by shape", fired[0])
	}
}

func TestEventsAfterAllWrites(t *testing.T) {
	m := NewManager(nil)
	pts := []geom.Coord{{X: 0}, {X: 0}, {X: 0}}
	to := []geom.Coord{{X: 1}, {X: 2}, {X: 3}}

	// The event rides on the first task; the others must still be final
	// when it is delivered.
	m.Animate(&pts[0], to[0], frame, &Event{Kind: "done"})
	m.Animate(&pts[1], to[1], frame, nil)
	m.Animate(&pts[2], to[2], frame, nil)

	events := m.Update(frame)
	if len(events) != 1 {
		t.Fatalf("got %d events, expected 1", len(events))
	}
	for i := range pts {
		if pts[i] != to[i] {
			t.Errorf("point %d = %v, expected %v", i, pts[i], to[i])
		}
	}
}

func TestEventIsCopied(t *testing.T) {
	m := NewManager(nil)
	p := geom.Coord{}
	ev := Event{Kind: "first"}

	m.Animate(&p, geom.Coord{X: 1}, frame, &ev)
	ev.Kind = "changed"

	events := m.Update(frame)
	if len(events) != 1 || events[0].Kind != "first" {
		t.Errorf("events = %+v, expected a single \"first\" event", events)
	}
}

func TestClear(t *testing.T) {
	m := NewManager(Linear)
	p := geom.Coord{}

	m.Animate(&p, geom.Coord{X: 100}, 100*time.Millisecond, &Event{Kind: "done"})
	m.Update(50 * time.Millisecond)
	m.Clear()

	if !m.Idle() {
		t.Error("Clear() should leave the manager idle")
	}
	if events := m.Update(time.Second); len(events) != 0 {
		t.Errorf("cleared tasks fired %d events", len(events))
	}
	if math.Abs(p.X-50) > 1e-3 {
		t.Errorf("X = %v, expected point left at 50", p.X)
	}
}

func TestEasingEndpoints(t *testing.T) {
	curves := map[string]Easing{
		"linear":      Linear,
		"out-quad":    EaseOutQuad,
		"in-out-quad": EaseInOutQuad,
	}

	for name, ease := range curves {
		if v := ease(0, 0, 1, 1); v != 0 {
			t.Errorf("%s(0) = %v, expected 0", name, v)
		}
		if v := ease(1, 0, 1, 1); math.Abs(float64(v)-1) > 1e-6 {
			t.Errorf("%s(1) = %v, expected 1", name, v)
		}
		// Monotonic on a coarse grid
		prev := ease(0, 0, 1, 1)
		for i := 1; i <= 20; i++ {
			v := ease(float32(i)/20, 0, 1, 1)
			if v < prev {
				t.Errorf("%s not monotonic at %d/20", name, i)
			}
			prev = v
		}
	}
}

func TestEasedMidpoint(t *testing.T) {
	m := NewManager(EaseOutQuad)
	p := geom.Coord{}

	m.Animate(&p, geom.Coord{X: 100, Y: 40}, 100*time.Millisecond, nil)
	m.Update(50 * time.Millisecond)

	// Out-quad is three quarters of the way at half time
	if math.Abs(p.X-75) > 1e-3 || math.Abs(p.Y-30) > 1e-3 {
		t.Errorf("point = (%v, %v), expected (75, 30)", p.X, p.Y)
	}
}

func TestFloatDestinationExact(t *testing.T) {
	m := NewManager(nil)
	p := geom.Coord{X: 0.1}
	to := geom.Coord{X: 123.456789012345, Y: -0.000000123}

	m.Animate(&p, to, 100*time.Millisecond, nil)
	for i := 0; i < 10 && !m.Idle(); i++ {
		m.Update(frame)
	}

	if p != to {
		t.Errorf("point = %v, expected exactly %v", p, to)
	}
}

func TestEasingByName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"linear", true},
		{"out-quad", true},
		{"in-out-quad", true},
		{"", true},
		{"bounce", false},
	}

	for _, tc := range tests {
		_, ok := EasingByName(tc.name)
		if ok != tc.ok {
			t.Errorf("EasingByName(%q) ok = %v, expected %v", tc.name, ok, tc.ok)
		}
	}
}
