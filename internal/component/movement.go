// component/movement.go
package component

// Position — мировая позиция сущности
type Position struct {
	X, Y, Z float64
}

// Add возвращает сумму позиций (используется для смещения подписи).
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Orbit — компонент орбитального движения вокруг начала координат в плоскости XY
type Orbit struct {
	Distance float64 // Радиус орбиты
	Angle    float64 // Текущий угол, радианы, в диапазоне [0, 2π)
	Speed    float64 // Угловая скорость, рад/с (SpeedConstant / Distance)
	Spin     float64 // Собственное вращение вокруг оси Y
}
