package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-9

// Helper functions for comparing values with tolerance
func vec3Equal(a, b mgl64.Vec3) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance &&
		math.Abs(a.Z()-b.Z()) < tolerance
}

func vec2Equal(a, b mgl64.Vec2) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func floatEqualTol(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}
