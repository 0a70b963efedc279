// pkg/render/color.go
package render

import (
	"image/color"

	"member-solar-system/internal/utils"
)

// Light — освещение сцены в линейных долях [0, 1] на канал.
type Light struct {
	Ambient     [3]float64
	Directional [3]float64 // нормированное направление на источник
	DirStrength float64
	Point       [3]float64 // позиция точечного источника
	PointPower  float64
	PointRange  float64
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// toUnit переводит цвет в доли [0, 1].
func toUnit(c color.RGBA) [3]float64 {
	return [3]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// shade — освещённость материала: база×(ambient+diffuse) + блик + свечение.
func shade(base, emissive [3]float64, diffuse, specular float64, ambient [3]float64) [3]float32 {
	var out [3]float32
	for i := 0; i < 3; i++ {
		v := base[i]*(ambient[i]+diffuse) + specular + emissive[i]
		out[i] = float32(utils.Clamp(v, 0, 1))
	}
	return out
}
