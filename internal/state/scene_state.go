// internal/state/scene_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"member-solar-system/internal/app"
	"member-solar-system/internal/ui"
	"member-solar-system/pkg/render"
)

// SceneState — основное состояние: ввод мыши, шаг сцены, отрисовка.
type SceneState struct {
	sm       *StateMachine
	scene    *app.OrbitScene
	renderer *render.SceneRenderer
	panel    *ui.InfoPanel

	clicks       app.ClickTracker
	lastX, lastY int
	hasCursor    bool
}

func NewSceneState(sm *StateMachine, scene *app.OrbitScene, renderer *render.SceneRenderer, panel *ui.InfoPanel) *SceneState {
	return &SceneState{sm: sm, scene: scene, renderer: renderer, panel: panel}
}

func (s *SceneState) Enter() {
	// Нажатие, начатое на экране загрузки, не должно стать кликом
	x, y := ebiten.CursorPosition()
	s.clicks.Reset(float64(x), float64(y))
	s.hasCursor = false
}

func (s *SceneState) Update(deltaTime float64) {
	s.handleInput()
	s.scene.Advance(deltaTime)
	s.panel.Update()
}

func (s *SceneState) handleInput() {
	x, y := ebiten.CursorPosition()
	w, h := s.scene.Viewport()
	moved := !s.hasCursor || x != s.lastX || y != s.lastY

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.clicks.Press(float64(x), float64(y))
	}
	if moved {
		if dx, dy, drag := s.clicks.Move(float64(x), float64(y)); drag {
			s.scene.Controls.Rotate(dx, dy, float64(h))
		}
		s.scene.PointerMoved(app.PointerToNDC(float64(x), float64(y), w, h))
	}
	s.lastX, s.lastY, s.hasCursor = x, y, true

	// Клик — отпускание без перетаскивания
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && s.clicks.Release() {
		s.scene.PointerClicked()
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		s.scene.Controls.Dolly(wheelY)
	}
}

func (s *SceneState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.scene.ECS, s.scene.Camera)
	s.panel.Draw(screen, s.scene.ECS)
}

func (s *SceneState) Exit() {}
