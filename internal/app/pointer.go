// internal/app/pointer.go
package app

import (
	"math"

	"member-solar-system/internal/config"
)

// ClickTracker отличает клик от перетаскивания по пути курсора с момента нажатия.
type ClickTracker struct {
	pressX, pressY float64
	lastX, lastY   float64
	pressed        bool
	dragging       bool
}

// Reset забывает прошлое нажатие; отсчёт идёт от текущей позиции курсора.
func (c *ClickTracker) Reset(x, y float64) {
	*c = ClickTracker{pressX: x, pressY: y, lastX: x, lastY: y}
}

// Press отмечает нажатие кнопки в точке (x, y).
func (c *ClickTracker) Press(x, y float64) {
	c.pressX, c.pressY = x, y
	c.lastX, c.lastY = x, y
	c.pressed = true
	c.dragging = false
}

// Move сообщает новую позицию курсора. Возвращает смещение для вращения камеры,
// если кнопка зажата и курсор ушёл дальше DragThreshold.
func (c *ClickTracker) Move(x, y float64) (dx, dy float64, drag bool) {
	dx, dy = x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y
	if !c.pressed {
		return 0, 0, false
	}
	if !c.dragging && math.Hypot(x-c.pressX, y-c.pressY) > config.DragThreshold {
		c.dragging = true
	}
	return dx, dy, c.dragging
}

// Release возвращает true, если нажатие было кликом, а не перетаскиванием.
// Отпускание без нажатия (например, нажатие пришлось на экран загрузки) кликом не считается.
func (c *ClickTracker) Release() bool {
	click := c.pressed && !c.dragging
	c.pressed, c.dragging = false, false
	return click
}
