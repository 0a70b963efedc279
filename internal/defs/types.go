// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"
)

// Role описывает одно орбитальное тело: организационную роль и её параметры.
type Role struct {
	Name     string  `toml:"name"`
	Color    uint32  `toml:"color"`    // 0xRRGGBB
	Distance float64 `toml:"distance"` // Радиус орбиты
	Size     float64 `toml:"size"`     // Радиус сферы
	Link     string  `toml:"link"`     // Цель навигации
}

// RGBA переводит цвет 0xRRGGBB в непрозрачный color.RGBA.
func (r Role) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(r.Color >> 16),
		G: uint8(r.Color >> 8),
		B: uint8(r.Color),
		A: 255,
	}
}

// Validate checks the fields the orbit math depends on.
// An empty link is allowed: clicking such a body does nothing.
func (r Role) Validate() error {
	if r.Distance <= 0 {
		return fmt.Errorf("role %q: distance must be positive, got %v", r.Name, r.Distance)
	}
	if r.Size <= 0 {
		return fmt.Errorf("role %q: size must be positive, got %v", r.Name, r.Size)
	}
	if r.Color > 0xffffff {
		return fmt.Errorf("role %q: color %#x is not 0xRRGGBB", r.Name, r.Color)
	}
	return nil
}

// DefaultRoles — роли, которые показываются без файла конфигурации.
var DefaultRoles = []Role{
	{Name: "President", Color: 0xff0000, Distance: 4, Size: 0.7, Link: "/president"},
	{Name: "Vice President", Color: 0x00ff00, Distance: 5, Size: 0.6, Link: "/vice-president"},
	{Name: "Secretary", Color: 0x0000ff, Distance: 6, Size: 0.6, Link: "/secretary"},
	{Name: "Treasurer", Color: 0xffff00, Distance: 7, Size: 0.6, Link: "/treasurer"},
}
