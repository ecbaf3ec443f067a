package flippy

import "github.com/vovakirdan/flippy/internal/registry"

// Shape is a playable polygon kind.
type Shape struct {
	ID       string
	Title    string
	Vertices int
}

// Shapes lists the playable shapes in menu order.
var Shapes = []Shape{
	{ID: "triangle", Title: "Triangle", Vertices: 3},
	{ID: "square", Title: "Square", Vertices: 4},
	{ID: "pentagon", Title: "Pentagon", Vertices: 5},
	{ID: "hexagon", Title: "Hexagon", Vertices: 6},
}

// ShapeByID returns the shape with the given ID.
func ShapeByID(id string) (Shape, bool) {
	for _, s := range Shapes {
		if s.ID == id {
			return s, true
		}
	}
	return Shape{}, false
}

func init() {
	for _, s := range Shapes {
		shape := s
		registry.Register(shape.ID, func() registry.Game {
			return New(shape)
		})
	}
}
