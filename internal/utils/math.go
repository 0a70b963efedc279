// internal/utils/math.go
package utils

import "math"

// TwoPi — полный оборот
const TwoPi = 2 * math.Pi

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// WrapAngle приводит угол к диапазону [0, 2π)
func WrapAngle(angle float64) float64 {
	angle = math.Mod(angle, TwoPi)
	if angle < 0 {
		angle += TwoPi
	}
	// math.Mod(-tiny) + 2π может округлиться ровно до 2π
	if angle >= TwoPi {
		angle = 0
	}
	return angle
}

// AngleDiff возвращает разницу углов в диапазоне [-π, π]
func AngleDiff(a, b float64) float64 {
	return math.Remainder(a-b, TwoPi)
}

// Clamp ограничивает значение диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
