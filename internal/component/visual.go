// internal/component/visual.go
package component

import (
	"image/color"

	"golang.org/x/image/font/opentype"
)

// Label — текстовая подпись, следующая за телом.
// Появляется асинхронно, после загрузки шрифта.
type Label struct {
	Text     string
	Size     float64 // Высота текста в мировых единицах
	Color    color.RGBA
	Font     *opentype.Font
	Position Position
}

// Highlight указывает, что тело сейчас под курсором.
type Highlight struct {
	Active bool
}
