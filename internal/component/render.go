// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки сферы
type Renderable struct {
	Color     color.RGBA
	Radius    float64 // Базовый радиус сферы
	Scale     float64 // Визуальный масштаб (1 или HoverScale)
	Emissive  color.RGBA
	Metalness float64
	Roughness float64
}

// EffectiveRadius — радиус с учётом масштаба. Он же используется при пересечении с лучом.
func (r *Renderable) EffectiveRadius() float64 {
	return r.Radius * r.Scale
}
