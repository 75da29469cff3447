package geometry

import "github.com/df07/go-pathtracer/pkg/core"

// approxEqual reports whether two vectors are within tol of each other
func approxEqual(a, b core.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}
