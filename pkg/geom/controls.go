// pkg/geom/controls.go
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const polarEpsilon = 1e-6

// OrbitControls вращает камеру вокруг цели по сфере и приближает колесом.
// Ввод накапливается в дельтах, Update применяет их раз в кадр.
// При включённом затухании дельта гасится постепенно, и камера «доезжает» по инерции.
type OrbitControls struct {
	camera *Camera

	Target        mgl64.Vec3
	EnableDamping bool
	DampingFactor float64
	RotateSpeed   float64
	ZoomSpeed     float64
	MinDistance   float64
	MaxDistance   float64

	deltaTheta float64
	deltaPhi   float64
	scale      float64
}

func NewOrbitControls(camera *Camera) *OrbitControls {
	return &OrbitControls{
		camera:        camera,
		Target:        camera.Target,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		MinDistance:   0,
		MaxDistance:   math.Inf(1),
		scale:         1,
	}
}

// Rotate принимает смещение указателя в пикселях.
func (c *OrbitControls) Rotate(dx, dy, viewportHeight float64) {
	if viewportHeight <= 0 {
		return
	}
	c.deltaTheta -= 2 * math.Pi * dx / viewportHeight * c.RotateSpeed
	c.deltaPhi -= 2 * math.Pi * dy / viewportHeight * c.RotateSpeed
}

// Dolly приближает (wheel > 0) или отдаляет (wheel < 0) камеру.
func (c *OrbitControls) Dolly(wheel float64) {
	zoom := math.Pow(0.95, c.ZoomSpeed)
	switch {
	case wheel > 0:
		c.scale *= zoom
	case wheel < 0:
		c.scale /= zoom
	}
}

// Update переносит накопленный ввод на камеру. Возвращает true, если камера сдвинулась.
func (c *OrbitControls) Update() bool {
	offset := c.camera.Position.Sub(c.Target)
	radius := offset.Len()
	if radius == 0 {
		return false
	}
	theta := math.Atan2(offset.X(), offset.Z())
	phi := math.Acos(clamp(offset.Y()/radius, -1, 1))

	factor := 1.0
	if c.EnableDamping {
		factor = c.DampingFactor
	}
	theta += c.deltaTheta * factor
	phi += c.deltaPhi * factor
	phi = clamp(phi, polarEpsilon, math.Pi-polarEpsilon)
	radius = clamp(radius*c.scale, c.MinDistance, c.MaxDistance)

	sinPhi := math.Sin(phi)
	position := c.Target.Add(mgl64.Vec3{
		radius * sinPhi * math.Sin(theta),
		radius * math.Cos(phi),
		radius * sinPhi * math.Cos(theta),
	})

	if c.EnableDamping {
		c.deltaTheta *= 1 - c.DampingFactor
		c.deltaPhi *= 1 - c.DampingFactor
	} else {
		c.deltaTheta, c.deltaPhi = 0, 0
	}
	c.scale = 1

	moved := position.Sub(c.camera.Position).Len() > 1e-9
	c.camera.LookAt(position, c.Target)
	return moved
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
