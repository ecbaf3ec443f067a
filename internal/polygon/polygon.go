// Package polygon implements the flippable polygon: construction, edge
// selection by angular sweep, reflection across an edge and the vertex-order
// invariant that keeps edge selection valid across flips.
//
// Coordinates are world units with Y pointing up. Vertices are stored in
// counter-clockwise order, so bearings from the center increase (wrapping
// once across ±π) as the vertex index increases.
package polygon

import (
	"errors"
	"math"
	"math/rand"

	"github.com/jbeda/geom"
)

// Geometry defaults.
const (
	DefaultScale     = 50.0 // Maximum vertex distance from the construction center
	DefaultTolerance = 2.0  // Per-coordinate slack used by EqualsWithinTolerance
	MinVertices      = 3
)

var (
	// ErrTooFewVertices is returned when constructing a polygon with fewer than 3 vertices.
	ErrTooFewVertices = errors.New("polygon: need at least 3 vertices")

	// ErrNoEdge means no edge span contains the target bearing.
	// This only happens when the vertex order has been corrupted.
	ErrNoEdge = errors.New("polygon: no edge faces target (vertex order corrupted)")
)

// Polygon is a convex polygon that can be flipped across its own edges.
type Polygon struct {
	verts  []geom.Coord
	center geom.Coord
	locked bool // Set while an animated flip or disappear is running
}

// New creates a polygon with vertexCount vertices around center.
// The first vertex sits at a random angle; the rest follow at equal angular
// steps. Each vertex distance is drawn from [minDistance, 1] * scale, where the
// floor rises with the vertex count so that every supported shape stays convex
// (seven or more vertices come out regular).
func New(rng *rand.Rand, vertexCount int, center geom.Coord, scale float64) (*Polygon, error) {
	if vertexCount < MinVertices {
		return nil, ErrTooFewVertices
	}
	if scale <= 0 {
		scale = DefaultScale
	}

	minDistance := MinDistance(vertexCount)
	step := 2 * math.Pi / float64(vertexCount)
	angle := rng.Float64() * 2 * math.Pi

	verts := make([]geom.Coord, vertexCount)
	for i := range verts {
		distance := (minDistance + rng.Float64()*(1-minDistance)) * scale
		verts[i] = geom.Coord{
			X: center.X + distance*math.Cos(angle),
			Y: center.Y + distance*math.Sin(angle),
		}
		angle += step
	}

	p := &Polygon{verts: verts}
	p.updateCenter()
	return p, nil
}

// MinDistance returns the lower bound of the vertex distance (as a fraction of
// scale) used for the given vertex count.
func MinDistance(vertexCount int) float64 {
	return clamp((float64(vertexCount)-3.5)/4, 0.25, 1)
}

// FromVertices builds a polygon from explicit vertices, which must be in
// counter-clockwise order. Used for fixtures and replays.
func FromVertices(verts []geom.Coord) (*Polygon, error) {
	if len(verts) < MinVertices {
		return nil, ErrTooFewVertices
	}
	p := &Polygon{verts: append([]geom.Coord(nil), verts...)}
	p.updateCenter()
	return p, nil
}

// Clone returns a deep copy of other. The copy is unlocked.
func Clone(other *Polygon) *Polygon {
	p := &Polygon{verts: append([]geom.Coord(nil), other.verts...)}
	p.updateCenter()
	return p
}

// Len returns the vertex count.
func (p *Polygon) Len() int {
	return len(p.verts)
}

// Vertices returns a copy of the vertex list.
func (p *Polygon) Vertices() []geom.Coord {
	return append([]geom.Coord(nil), p.verts...)
}

// Coords returns the vertices flattened as x0, y0, x1, y1, ...
func (p *Polygon) Coords() []float64 {
	out := make([]float64, 0, 2*len(p.verts))
	for _, v := range p.verts {
		out = append(out, v.X, v.Y)
	}
	return out
}

// Center returns the arithmetic mean of the vertices.
func (p *Polygon) Center() geom.Coord {
	return p.center
}

// IsLocked reports whether a flip is in progress.
func (p *Polygon) IsLocked() bool {
	return p.locked
}

// Lock prevents further flips until Unlock or a settled flip.
func (p *Polygon) Lock() {
	p.locked = true
}

// Unlock allows flips again.
func (p *Polygon) Unlock() {
	p.locked = false
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (p *Polygon) Bounds() geom.Rect {
	r := geom.Rect{Min: p.verts[0], Max: p.verts[0]}
	for _, v := range p.verts[1:] {
		r.ExpandToContainCoord(v)
	}
	return r
}

// Equals reports whether both polygons have the same vertex count and every
// index-aligned coordinate differs by at most tolerance. Congruent polygons
// with a different starting vertex compare unequal.
func (p *Polygon) Equals(other *Polygon, tolerance float64) bool {
	if other == nil || len(p.verts) != len(other.verts) {
		return false
	}
	for i, v := range p.verts {
		o := other.verts[i]
		if math.Abs(v.X-o.X) > tolerance || math.Abs(v.Y-o.Y) > tolerance {
			return false
		}
	}
	return true
}

// EqualsWithinTolerance is Equals with DefaultTolerance.
func (p *Polygon) EqualsWithinTolerance(other *Polygon) bool {
	return p.Equals(other, DefaultTolerance)
}

// Contains reports whether pt lies inside (or on) the polygon.
func (p *Polygon) Contains(pt geom.Coord) bool {
	n := len(p.verts)
	for i := 0; i < n; i++ {
		a := p.verts[i]
		b := p.verts[(i+1)%n]
		// Counter-clockwise order: inside is to the left of every edge
		if cross(b.Minus(a), pt.Minus(a)) < 0 {
			return false
		}
	}
	return true
}

// Bearings returns the angle from the center to each vertex, in (-π, π].
func (p *Polygon) Bearings() []float64 {
	out := make([]float64, len(p.verts))
	for i, v := range p.verts {
		out[i] = bearing(p.center, v)
	}
	return out
}

// ReverseOrder reverses the vertex sequence in place. A reflection inverts the
// winding, so this runs after every flip to restore counter-clockwise order.
func (p *Polygon) ReverseOrder() {
	for i, j := 0, len(p.verts)-1; i < j; i, j = i+1, j-1 {
		p.verts[i], p.verts[j] = p.verts[j], p.verts[i]
	}
}

// updateCenter recomputes the center from the current vertices.
func (p *Polygon) updateCenter() {
	var sum geom.Coord
	for _, v := range p.verts {
		sum = sum.Plus(v)
	}
	p.center = sum.Times(1 / float64(len(p.verts)))
}

func bearing(from, to geom.Coord) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

func dot(a, b geom.Coord) float64 {
	return a.X*b.X + a.Y*b.Y
}

func cross(a, b geom.Coord) float64 {
	return a.X*b.Y - a.Y*b.X
}

func clamp(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
