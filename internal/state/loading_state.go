// internal/state/loading_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"member-solar-system/internal/app"
	"member-solar-system/internal/config"
)

// LoadingState ждёт шрифт подписей, но не дольше LoadingTimeout.
type LoadingState struct {
	sm      *StateMachine
	scene   *app.OrbitScene
	next    func() State
	started float64
}

func NewLoadingState(sm *StateMachine, scene *app.OrbitScene, next func() State) *LoadingState {
	return &LoadingState{sm: sm, scene: scene, next: next}
}

func (l *LoadingState) Enter() {
	l.started = l.scene.ECS.SceneTime
}

func (l *LoadingState) Update(deltaTime float64) {
	// Сцена живёт и во время загрузки: тела уже вращаются
	l.scene.Advance(deltaTime)
	elapsed := l.scene.ECS.SceneTime - l.started

	if l.scene.LabelsReady() {
		l.sm.SetState(l.next())
		return
	}
	if elapsed >= config.LoadingTimeout {
		log.Printf("WARNING: labels not ready after %.1fs, showing scene without them", elapsed)
		l.sm.SetState(l.next())
	}
}

func (l *LoadingState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w, h := l.scene.Viewport()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Loading... %d%%", l.progress()), w/2-40, h/2)
}

func (l *LoadingState) Exit() {}

func (l *LoadingState) progress() int {
	bodies := len(l.scene.Bodies())
	if bodies == 0 {
		return 100
	}
	return len(l.scene.ECS.Labels) * 100 / bodies
}
