package tween

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// Easing is a gween curve: elapsed t, begin b, change c, duration d.
type Easing = ease.TweenFunc

// Curves selectable from config.
var (
	Linear        Easing = ease.Linear
	EaseOutQuad   Easing = ease.OutQuad
	EaseInOutQuad Easing = ease.InOutQuad
)

// EasingByName resolves a config name ("linear", "out-quad", "in-out-quad").
// Returns false for unknown names.
func EasingByName(name string) (Easing, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear":
		return Linear, true
	case "out-quad", "outquad":
		return EaseOutQuad, true
	case "", "in-out-quad", "inoutquad":
		return EaseInOutQuad, true
	default:
		return nil, false
	}
}
