// pkg/geom/camera.go
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera — перспективная камера. Матрицы пересчитываются в UpdateMatrices,
// который вызывают SetAspect, LookAt и OrbitControls.Update.
type Camera struct {
	FOV    float64 // вертикальный угол обзора, градусы
	Aspect float64
	Near   float64
	Far    float64

	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	viewProj mgl64.Mat4
	inverse  mgl64.Mat4
}

// NewPerspectiveCamera creates a camera at the origin looking down -Z.
func NewPerspectiveCamera(fov, aspect, near, far float64) *Camera {
	c := &Camera{
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
		Position: mgl64.Vec3{0, 0, 0},
		Target:   mgl64.Vec3{0, 0, -1},
		Up:       mgl64.Vec3{0, 1, 0},
	}
	c.UpdateMatrices()
	return c
}

// SetAspect обновляет соотношение сторон при изменении размера окна.
func (c *Camera) SetAspect(aspect float64) {
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		return
	}
	c.Aspect = aspect
	c.UpdateMatrices()
}

// LookAt ставит камеру в position и направляет на target.
func (c *Camera) LookAt(position, target mgl64.Vec3) {
	c.Position = position
	c.Target = target
	c.UpdateMatrices()
}

func (c *Camera) UpdateMatrices() {
	view := mgl64.LookAtV(c.Position, c.Target, c.Up)
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
	c.viewProj = proj.Mul4(view)
	c.inverse = c.viewProj.Inv()
}

// FocalLength возвращает фокусное расстояние в пикселях для экрана высотой height.
func (c *Camera) FocalLength(height float64) float64 {
	return height / 2 / math.Tan(mgl64.DegToRad(c.FOV)/2)
}

// Ray строит луч из камеры через точку в нормализованных координатах устройства.
func (c *Camera) Ray(ndcX, ndcY float64) Ray {
	p := c.inverse.Mul4x1(mgl64.Vec4{ndcX, ndcY, 0.5, 1})
	world := p.Vec3().Mul(1 / p.W())
	return NewRay(c.Position, world.Sub(c.Position))
}

// ProjectNDC переводит мировую точку в NDC. depth — расстояние вдоль оси взгляда.
// ok == false, если точка позади камеры.
func (c *Camera) ProjectNDC(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, w, false
	}
	return clip.X() / w, clip.Y() / w, w, true
}

// Project переводит мировую точку в пиксели экрана width×height.
func (c *Camera) Project(p mgl64.Vec3, width, height float64) (sx, sy, depth float64, ok bool) {
	x, y, depth, ok := c.ProjectNDC(p)
	if !ok {
		return 0, 0, depth, false
	}
	sx = (x + 1) / 2 * width
	sy = (1 - y) / 2 * height
	return sx, sy, depth, true
}
