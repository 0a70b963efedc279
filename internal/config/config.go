// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	WindowTitle  = "Member Solar System"

	SpeedConstant = 0.1   // Угловая скорость тела = SpeedConstant / радиус орбиты
	SpinPerFrame  = 0.001 // Собственное вращение, радиан за кадр
	LabelOffsetY  = 0.7   // Подпись висит над телом на этой высоте
	LabelSize     = 0.2
	HoverScale    = 1.2
	CentralRadius = 1.0

	CameraFOV      = 75.0 // градусы, по вертикали
	CameraNear     = 0.1
	CameraFar      = 1000.0
	CameraDistance = 15.0

	DampingFactor    = 0.05
	RotateSpeed      = 1.0
	ZoomSpeed        = 1.0
	MinCameraDist    = 2.0
	MaxCameraDist    = 100.0
	DragThreshold    = 4.0 // пиксели; больше — это уже перетаскивание, а не клик
	MinLabelPixels   = 4.0
	MaxLabelPixels   = 96.0
	SphereRings      = 12
	SphereSegments   = 32
	LoadingTimeout   = 3.0 // секунды ожидания шрифта до показа сцены без подписей
	FontFetchTimeout = 10  // секунды на загрузку шрифта по сети

	AmbientIntensity     = 0.35
	DirectionalIntensity = 0.55
	PointIntensity       = 0.6
	PointLightRange      = 100.0
	SpecularPower        = 32.0

	CentralMetalness = 0.4
	CentralRoughness = 0.6
	BodyMetalness    = 0.7
	BodyRoughness    = 0.3

	PanelHeight    = 64
	PanelSpeed     = 8.0 // пикселей за кадр
	PanelFontSize  = 18
	PanelPaddingX  = 16
	PanelLineSpace = 24

	DefaultFontLocator = "builtin:goregular"
	DefaultNavigator   = "log"
)

var (
	BackgroundColor = color.RGBA{0x00, 0x00, 0x11, 255}
	CentralColor    = color.RGBA{0x88, 0x88, 0xff, 255}
	LabelColor      = color.RGBA{255, 255, 255, 255}
	HoverEmissive   = color.RGBA{0x44, 0x44, 0x44, 255}
	NoEmissive      = color.RGBA{0, 0, 0, 255}
	AmbientColor    = color.RGBA{0x80, 0x80, 0x80, 255}
	PanelColor      = color.RGBA{20, 20, 40, 220}
	PanelTextColor  = color.RGBA{240, 240, 240, 255}
	PanelLinkColor  = color.RGBA{140, 180, 255, 255}

	DirectionalLightPosition = [3]float64{10, 10, 10}
	PointLightPosition       = [3]float64{0, 0, 10}

	// Verbose включает отладочные сообщения в логах
	Verbose = false
)
