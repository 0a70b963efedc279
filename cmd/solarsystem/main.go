// cmd/solarsystem/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"member-solar-system/internal/app"
	"member-solar-system/internal/assets"
	"member-solar-system/internal/config"
	"member-solar-system/internal/defs"
	"member-solar-system/internal/event"
	"member-solar-system/internal/nav"
	"member-solar-system/internal/state"
	"member-solar-system/internal/ui"
	"member-solar-system/internal/utils"
	"member-solar-system/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	scene          *app.OrbitScene
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout следует за размером окна: камера и рендерер узнают о нём через Resize.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.scene.Resize(outsideWidth, outsideHeight)
	return a.scene.Viewport()
}

func main() {
	Execute()
}

func runScene(cmd *cobra.Command, args []string) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	if settings.Verbose {
		config.Verbose = true
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	}
	if settings.Pprof != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.Pprof, nil))
		}()
	}

	roles, err := defs.LoadRoles(settings.RolesFile)
	if err != nil {
		return err
	}
	navigator, err := nav.New(settings.Navigator)
	if err != nil {
		return err
	}

	dispatcher := event.NewDispatcher()
	nav.NewListener(navigator).Subscribe(dispatcher)

	fonts := assets.NewFontManager(config.FontFetchTimeout * time.Second)
	defer fonts.Cleanup()

	scene, err := app.NewOrbitScene(roles, app.Options{
		SpeedConstant: settings.SpeedConstant,
		FontLocator:   settings.Font,
		Width:         settings.Width,
		Height:        settings.Height,
		Rng:           utils.NewPRNGService(settings.Seed),
		Fonts:         fonts,
		Dispatcher:    dispatcher,
	})
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}

	renderer := render.NewSceneRenderer(fonts, settings.Width, settings.Height)
	scene.OnResize(renderer)
	panel := ui.NewInfoPanel(fonts)
	panel.Subscribe(dispatcher)
	scene.OnResize(panel)

	sm := state.NewStateMachine()
	sm.SetState(state.NewLoadingState(sm, scene, func() state.State {
		return state.NewSceneState(sm, scene, renderer, panel)
	}))

	game := &AppGame{
		stateMachine:   sm,
		scene:          scene,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(settings.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(game)
}
