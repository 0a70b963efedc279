// internal/app/orbit_scene.go
package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/font/opentype"

	"member-solar-system/internal/assets"
	"member-solar-system/internal/component"
	"member-solar-system/internal/config"
	"member-solar-system/internal/defs"
	"member-solar-system/internal/entity"
	"member-solar-system/internal/event"
	"member-solar-system/internal/system"
	"member-solar-system/internal/types"
	"member-solar-system/internal/utils"
	"member-solar-system/pkg/geom"
)

// FontLoader — асинхронный источник шрифтов для подписей.
type FontLoader interface {
	Request(locator string, cb assets.FontCallback)
	Poll() int
}

// Viewport получает новый размер окна (рендерер, панели UI).
type Viewport interface {
	SetViewport(width, height int)
}

// Options настраивает OrbitScene. Нулевые значения заменяются значениями по умолчанию.
type Options struct {
	SpeedConstant float64
	FontLocator   string
	Width, Height int
	Rng           *utils.PRNGService
	Fonts         FontLoader // nil — сцена без подписей
	Dispatcher    *event.Dispatcher
}

// OrbitScene — тела на орбитах вокруг центрального тела, наведение и выбор указателем.
// Все методы вызываются из главного цикла.
type OrbitScene struct {
	ECS             *entity.ECS
	Camera          *geom.Camera
	Controls        *geom.OrbitControls
	EventDispatcher *event.Dispatcher
	OrbitSystem     *system.OrbitSystem
	LabelSystem     *system.LabelSystem
	PickSystem      *system.PickSystem
	CentralID       types.EntityID

	fonts     FontLoader
	viewports []Viewport
	width     int
	height    int

	// hovered меняет только PointerMoved.
	hovered types.EntityID

	pointerX, pointerY float64
	hasPointer         bool
}

// NewOrbitScene создаёт по телу на каждую роль со случайным начальным углом.
func NewOrbitScene(roles []defs.Role, opts Options) (*OrbitScene, error) {
	if len(roles) == 0 {
		return nil, errors.New("orbit scene: no roles")
	}
	for i, role := range roles {
		if err := role.Validate(); err != nil {
			return nil, fmt.Errorf("orbit scene: role #%d: %w", i+1, err)
		}
	}
	opts = withDefaults(opts)

	ecs := entity.NewECS()
	camera := geom.NewPerspectiveCamera(config.CameraFOV, float64(opts.Width)/float64(opts.Height), config.CameraNear, config.CameraFar)
	camera.LookAt(mgl64.Vec3{0, 0, config.CameraDistance}, mgl64.Vec3{})

	controls := geom.NewOrbitControls(camera)
	controls.EnableDamping = true
	controls.DampingFactor = config.DampingFactor
	controls.RotateSpeed = config.RotateSpeed
	controls.ZoomSpeed = config.ZoomSpeed
	controls.MinDistance = config.MinCameraDist
	controls.MaxDistance = config.MaxCameraDist

	s := &OrbitScene{
		ECS:             ecs,
		Camera:          camera,
		Controls:        controls,
		EventDispatcher: opts.Dispatcher,
		OrbitSystem:     system.NewOrbitSystem(ecs),
		LabelSystem:     system.NewLabelSystem(ecs, opts.Dispatcher),
		PickSystem:      system.NewPickSystem(ecs, opts.Dispatcher),
		fonts:           opts.Fonts,
		width:           opts.Width,
		height:          opts.Height,
	}

	s.CentralID = s.createCentralBody()
	for _, role := range roles {
		id := s.createBody(role, opts.Rng.Angle(), opts.SpeedConstant)
		s.requestLabel(id, role.Name, opts.FontLocator)
	}
	log.Printf("Orbit scene created: %d bodies, seed %d", len(ecs.Bodies), opts.Rng.Seed())
	return s, nil
}

func withDefaults(opts Options) Options {
	if opts.SpeedConstant <= 0 {
		opts.SpeedConstant = config.SpeedConstant
	}
	if opts.FontLocator == "" {
		opts.FontLocator = config.DefaultFontLocator
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = config.ScreenWidth, config.ScreenHeight
	}
	if opts.Rng == nil {
		opts.Rng = utils.NewPRNGService(0)
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = event.NewDispatcher()
	}
	return opts
}

func (s *OrbitScene) createCentralBody() types.EntityID {
	id := s.ECS.NewEntity()
	s.ECS.Positions[id] = &component.Position{}
	s.ECS.Renderables[id] = &component.Renderable{
		Color:     config.CentralColor,
		Radius:    config.CentralRadius,
		Scale:     1,
		Emissive:  config.NoEmissive,
		Metalness: config.CentralMetalness,
		Roughness: config.CentralRoughness,
	}
	s.ECS.Centrals[id] = &component.Central{}
	return id
}

func (s *OrbitScene) createBody(role defs.Role, angle, speedConstant float64) types.EntityID {
	id := s.ECS.NewEntity()
	x, y := system.OrbitPosition(role.Distance, angle)

	s.ECS.Positions[id] = &component.Position{X: x, Y: y}
	s.ECS.Orbits[id] = &component.Orbit{
		Distance: role.Distance,
		Angle:    angle,
		Speed:    system.OrbitSpeed(speedConstant, role.Distance),
	}
	s.ECS.Renderables[id] = &component.Renderable{
		Color:     role.RGBA(),
		Radius:    role.Size,
		Scale:     1,
		Emissive:  config.NoEmissive,
		Metalness: config.BodyMetalness,
		Roughness: config.BodyRoughness,
	}
	s.ECS.Roles[id] = &component.Role{Name: role.Name, Link: role.Link}
	s.ECS.Highlights[id] = &component.Highlight{}
	s.ECS.Bodies = append(s.ECS.Bodies, id)
	return id
}

// requestLabel заказывает шрифт; подпись появится, когда он загрузится.
func (s *OrbitScene) requestLabel(id types.EntityID, text, locator string) {
	if s.fonts == nil {
		return
	}
	s.fonts.Request(locator, func(f *opentype.Font) {
		s.LabelSystem.Attach(id, &component.Label{
			Text:  text,
			Size:  config.LabelSize,
			Color: config.LabelColor,
			Font:  f,
		})
	})
}

// Advance продвигает сцену на deltaTime секунд.
func (s *OrbitScene) Advance(deltaTime float64) {
	if s.fonts != nil {
		s.fonts.Poll()
	}
	s.ECS.SceneTime += deltaTime
	s.OrbitSystem.Update(deltaTime)
	s.LabelSystem.Update()
	s.Controls.Update()
}

// PointerMoved проверяет, какое тело под указателем, и переключает подсветку.
// Координаты нормализованы: [-1, 1], Y вверх.
func (s *OrbitScene) PointerMoved(ndcX, ndcY float64) {
	s.pointerX, s.pointerY, s.hasPointer = ndcX, ndcY, true

	hit, _ := s.pick()
	if hit == s.hovered {
		return
	}
	if s.hovered != 0 {
		s.PickSystem.Unhighlight(s.hovered)
	}
	s.hovered = hit
	if hit != 0 {
		s.PickSystem.Highlight(hit)
	}
}

// PointerClicked отправляет цель навигации тела под последней позицией указателя.
// Не более одного события на клик; без попадания или без ссылки ничего не происходит.
func (s *OrbitScene) PointerClicked() {
	if !s.hasPointer {
		return
	}
	hit, ok := s.pick()
	if !ok {
		return
	}
	role, ok := s.ECS.Roles[hit]
	if !ok || role.Link == "" {
		return
	}
	if config.Verbose {
		log.Printf("Body %q selected, link %s", role.Name, role.Link)
	}
	s.EventDispatcher.Dispatch(event.Event{Type: event.BodySelected, Data: role.Link})
}

func (s *OrbitScene) pick() (types.EntityID, bool) {
	ray := s.Camera.Ray(s.pointerX, s.pointerY)
	return s.PickSystem.Pick(ray, s.Camera.Near, s.Camera.Far)
}

// Resize обновляет камеру и всех подписчиков на размер окна.
func (s *OrbitScene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.Camera.SetAspect(float64(width) / float64(height))
	for _, v := range s.viewports {
		v.SetViewport(width, height)
	}
}

// OnResize регистрирует получателя размера окна и сразу сообщает ему текущий.
func (s *OrbitScene) OnResize(v Viewport) {
	s.viewports = append(s.viewports, v)
	v.SetViewport(s.width, s.height)
}

// Viewport возвращает текущий размер окна.
func (s *OrbitScene) Viewport() (int, int) {
	return s.width, s.height
}

// Hovered возвращает тело под указателем.
func (s *OrbitScene) Hovered() (types.EntityID, bool) {
	return s.hovered, s.hovered != 0
}

// Bodies возвращает орбитальные тела в порядке создания.
func (s *OrbitScene) Bodies() []types.EntityID {
	return s.ECS.Bodies
}

// BodyByName ищет тело по имени роли.
func (s *OrbitScene) BodyByName(name string) (types.EntityID, bool) {
	for _, id := range s.ECS.Bodies {
		if role, ok := s.ECS.Roles[id]; ok && role.Name == name {
			return id, true
		}
	}
	return 0, false
}

// LabelsReady сообщает, получили ли подписи все тела.
func (s *OrbitScene) LabelsReady() bool {
	return len(s.ECS.Labels) == len(s.ECS.Bodies)
}

// PointerToNDC переводит пиксели окна в нормализованные координаты устройства.
func PointerToNDC(x, y float64, width, height int) (float64, float64) {
	return x/float64(width)*2 - 1, -(y/float64(height))*2 + 1
}
