// internal/ui/info_panel.go
package ui

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"member-solar-system/internal/config"
	"member-solar-system/internal/entity"
	"member-solar-system/internal/event"
	"member-solar-system/internal/types"
)

const panelMargin = 5

// FaceSource выдаёт начертание шрифта нужного размера.
type FaceSource interface {
	FaceFor(f *opentype.Font, size float64) font.Face
}

// InfoPanel выезжает снизу и показывает имя и ссылку тела под курсором.
type InfoPanel struct {
	IsVisible    bool
	TargetEntity types.EntityID
	faces        FaceSource
	width        int
	height       int
	currentY     float64
	targetY      float64
}

// NewInfoPanel creates a hidden panel.
func NewInfoPanel(faces FaceSource) *InfoPanel {
	return &InfoPanel{
		faces:    faces,
		width:    config.ScreenWidth,
		height:   config.ScreenHeight,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

// Subscribe подписывает панель на события наведения.
func (p *InfoPanel) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.BodyHovered, p)
	d.Subscribe(event.BodyUnhovered, p)
}

func (p *InfoPanel) OnEvent(e event.Event) {
	id, ok := e.Data.(types.EntityID)
	if !ok {
		return
	}
	switch e.Type {
	case event.BodyHovered:
		p.SetTarget(id)
	case event.BodyUnhovered:
		if id == p.TargetEntity {
			p.Hide()
		}
	}
}

// SetViewport переносит панель к новому нижнему краю окна.
func (p *InfoPanel) SetViewport(width, height int) {
	shift := float64(height - p.height)
	p.width, p.height = width, height
	p.currentY += shift
	p.targetY += shift
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = float64(p.height - config.PanelHeight)
}

func (p *InfoPanel) Hide() {
	p.targetY = float64(p.height)
}

func (p *InfoPanel) Update() {
	// Анимация панели
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	if math.Abs(diff) < config.PanelSpeed {
		p.currentY = p.targetY
	} else {
		p.currentY += math.Copysign(config.PanelSpeed, diff)
	}
	if p.currentY >= float64(p.height) {
		p.IsVisible = false
		p.TargetEntity = 0
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	if !p.IsVisible || p.TargetEntity == 0 {
		return
	}
	role, ok := ecs.Roles[p.TargetEntity]
	if !ok {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		p.width-panelMargin,
		int(p.currentY)+config.PanelHeight-panelMargin,
	)
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), config.PanelColor, true)
	if render, ok := ecs.Renderables[p.TargetEntity]; ok {
		vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, render.Color, true)
	}

	link := role.Link
	if link == "" {
		link = "(no link)"
	}
	x := panelRect.Min.X + config.PanelPaddingX
	y := panelRect.Min.Y + config.PanelFontSize

	face := p.face(ecs)
	if face == nil {
		// Шрифт ещё не загружен
		ebitenutil.DebugPrintAt(screen, role.Name, x, panelRect.Min.Y+4)
		ebitenutil.DebugPrintAt(screen, link, x, panelRect.Min.Y+4+config.PanelLineSpace)
		return
	}
	text.Draw(screen, role.Name, face, x, y, config.PanelTextColor)
	text.Draw(screen, link, face, x, y+config.PanelLineSpace, config.PanelLinkColor)
}

// face берёт шрифт из подписи тела.
func (p *InfoPanel) face(ecs *entity.ECS) font.Face {
	if p.faces == nil {
		return nil
	}
	label, ok := ecs.Labels[p.TargetEntity]
	if !ok || label.Font == nil {
		return nil
	}
	return p.faces.FaceFor(label.Font, config.PanelFontSize)
}
