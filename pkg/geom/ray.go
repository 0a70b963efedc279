// pkg/geom/ray.go
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray — луч с нормированным направлением.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay нормирует направление.
func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At возвращает точку луча для параметра t.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectSphere возвращает ближайший неотрицательный параметр пересечения со сферой.
// Если начало луча внутри сферы, возвращается точка выхода.
func (r Ray) IntersectSphere(center mgl64.Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t0, t1 := -b-sq, -b+sq
	if t1 < 0 {
		return 0, false // сфера позади
	}
	if t0 < 0 {
		return t1, true
	}
	return t0, true
}
