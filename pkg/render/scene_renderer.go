package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"member-solar-system/internal/component"
	"member-solar-system/internal/config"
	"member-solar-system/internal/entity"
	"member-solar-system/internal/types"
	"member-solar-system/internal/utils"
	"member-solar-system/pkg/geom"
)

// FaceSource выдаёт начертание шрифта нужного размера в пикселях.
type FaceSource interface {
	FaceFor(f *opentype.Font, size float64) font.Face
}

type drawItem struct {
	depth float64
	id    types.EntityID
	label bool
}

// SceneRenderer рисует сферы и подписи через перспективную камеру.
type SceneRenderer struct {
	screenWidth  int
	screenHeight int
	faces        FaceSource
	light        Light
	whiteImg     *ebiten.Image
	vs           []ebiten.Vertex
	is           []uint16
	items        []drawItem
}

func NewSceneRenderer(faces FaceSource, screenWidth, screenHeight int) *SceneRenderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)

	return &SceneRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		faces:        faces,
		light:        DefaultLight(),
		whiteImg:     img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vs:           make([]ebiten.Vertex, 0, 1+config.SphereRings*config.SphereSegments),
		is:           make([]uint16, 0, 6*config.SphereRings*config.SphereSegments),
	}
}

// DefaultLight собирает освещение из конфигурации.
func DefaultLight() Light {
	ambient := toUnit(config.AmbientColor)
	for i := range ambient {
		ambient[i] *= config.AmbientIntensity
	}
	dir := mgl64.Vec3(config.DirectionalLightPosition).Normalize()
	return Light{
		Ambient:     ambient,
		Directional: [3]float64(dir),
		DirStrength: config.DirectionalIntensity,
		Point:       config.PointLightPosition,
		PointPower:  config.PointIntensity,
		PointRange:  config.PointLightRange,
	}
}

// SetViewport вызывается при изменении размера окна.
func (r *SceneRenderer) SetViewport(width, height int) {
	r.screenWidth, r.screenHeight = width, height
}

// Draw рисует кадр: фон, затем сферы и подписи от дальних к ближним.
func (r *SceneRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, camera *geom.Camera) {
	screen.Fill(config.BackgroundColor)

	r.items = r.items[:0]
	for id, render := range ecs.Renderables {
		pos, ok := ecs.Positions[id]
		if !ok || render.Radius <= 0 {
			continue
		}
		if _, _, depth, visible := camera.ProjectNDC(vec(pos)); visible {
			r.items = append(r.items, drawItem{depth: depth, id: id})
		}
	}
	for id, label := range ecs.Labels {
		if _, _, depth, visible := camera.ProjectNDC(vec(&label.Position)); visible {
			r.items = append(r.items, drawItem{depth: depth, id: id, label: true})
		}
	}
	sort.Slice(r.items, func(i, j int) bool {
		if r.items[i].depth != r.items[j].depth {
			return r.items[i].depth > r.items[j].depth
		}
		return r.items[i].id < r.items[j].id
	})

	for _, item := range r.items {
		if item.label {
			r.drawLabel(screen, ecs.Labels[item.id], camera)
			continue
		}
		render := ecs.Renderables[item.id]
		center := vec(ecs.Positions[item.id])
		r.drawSphere(screen, center, render, camera)
		if orbit, ok := ecs.Orbits[item.id]; ok {
			r.drawMeridian(screen, center, render.EffectiveRadius(), orbit.Spin, DarkenColor(render.Color), camera)
		}
	}
}

// drawSphere строит видимую шапку сферы кольцами вокруг направления на камеру
// и освещает каждую вершину.
func (r *SceneRenderer) drawSphere(screen *ebiten.Image, center mgl64.Vec3, render *component.Renderable, camera *geom.Camera) {
	radius := render.EffectiveRadius()
	toCam := camera.Position.Sub(center)
	dist := toCam.Len()
	if dist <= radius {
		return
	}
	w := toCam.Mul(1 / dist)
	u := camera.Up.Cross(w)
	if u.Len() < 1e-9 {
		u = mgl64.Vec3{1, 0, 0}
	}
	u = u.Normalize()
	v := w.Cross(u)

	// Край видимой части сферы при перспективе.
	maxTheta := math.Acos(radius / dist)
	base := toUnit(render.Color)
	emissive := toUnit(render.Emissive)
	shininess := config.SpecularPower * (1 - render.Roughness)
	specScale := utils.Lerp(0.2, 0.8, render.Metalness*(1-render.Roughness))

	r.vs, r.is = r.vs[:0], r.is[:0]
	sw, sh := float64(r.screenWidth), float64(r.screenHeight)
	addVertex := func(n mgl64.Vec3) {
		p := center.Add(n.Mul(radius))
		sx, sy, _, _ := camera.Project(p, sw, sh)
		diffuse, spec := r.lighting(p, n, camera.Position, shininess)
		c := shade(base, emissive, diffuse, spec*specScale, r.light.Ambient)
		r.vs = append(r.vs, ebiten.Vertex{
			DstX: float32(sx), DstY: float32(sy),
			SrcX: 1, SrcY: 1,
			ColorR: c[0], ColorG: c[1], ColorB: c[2], ColorA: 1,
		})
	}

	rings, segments := config.SphereRings, config.SphereSegments
	addVertex(w)
	for ring := 1; ring <= rings; ring++ {
		theta := maxTheta * float64(ring) / float64(rings)
		sinT, cosT := math.Sincos(theta)
		for seg := 0; seg < segments; seg++ {
			phi := 2 * math.Pi * float64(seg) / float64(segments)
			sinP, cosP := math.Sincos(phi)
			n := w.Mul(cosT).Add(u.Mul(sinT * cosP)).Add(v.Mul(sinT * sinP))
			addVertex(n)
		}
	}

	ringStart := func(ring int) uint16 { return uint16(1 + (ring-1)*segments) }
	for seg := 0; seg < segments; seg++ {
		next := (seg + 1) % segments
		r.is = append(r.is, 0, ringStart(1)+uint16(seg), ringStart(1)+uint16(next))
	}
	for ring := 2; ring <= rings; ring++ {
		inner, outer := ringStart(ring-1), ringStart(ring)
		for seg := 0; seg < segments; seg++ {
			next := (seg + 1) % segments
			a, b := inner+uint16(seg), inner+uint16(next)
			c, d := outer+uint16(seg), outer+uint16(next)
			r.is = append(r.is, a, c, d, a, d, b)
		}
	}

	screen.DrawTriangles(r.vs, r.is, r.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// lighting — диффузная и бликовая составляющие в точке p с нормалью n.
func (r *SceneRenderer) lighting(p, n, eye mgl64.Vec3, shininess float64) (diffuse, specular float64) {
	view := eye.Sub(p).Normalize()

	dir := mgl64.Vec3(r.light.Directional)
	if nd := n.Dot(dir); nd > 0 {
		diffuse += nd * r.light.DirStrength
		specular += blinn(n, dir, view, shininess) * r.light.DirStrength
	}

	toPoint := mgl64.Vec3(r.light.Point).Sub(p)
	d := toPoint.Len()
	if d > 0 && d < r.light.PointRange {
		l := toPoint.Mul(1 / d)
		att := math.Pow(1-d/r.light.PointRange, 2)
		if nd := n.Dot(l); nd > 0 {
			diffuse += nd * r.light.PointPower * att
			specular += blinn(n, l, view, shininess) * r.light.PointPower * att
		}
	}
	return diffuse, specular
}

func blinn(n, l, view mgl64.Vec3, shininess float64) float64 {
	if shininess <= 0 {
		return 0
	}
	h := l.Add(view).Normalize()
	return math.Pow(math.Max(0, n.Dot(h)), shininess)
}

// drawMeridian рисует меридиан, повёрнутый на угол собственного вращения, чтобы вращение было видно.
func (r *SceneRenderer) drawMeridian(screen *ebiten.Image, center mgl64.Vec3, radius, spin float64, clr color.RGBA, camera *geom.Camera) {
	const steps = 48
	sw, sh := float64(r.screenWidth), float64(r.screenHeight)
	sinS, cosS := math.Sincos(spin)

	var prevX, prevY float64
	prevVisible := false
	for i := 0; i <= steps; i++ {
		s := 2 * math.Pi * float64(i) / steps
		sinA, cosA := math.Sincos(s)
		n := mgl64.Vec3{sinA * sinS, cosA, sinA * cosS}
		p := center.Add(n.Mul(radius * 1.001))
		facing := n.Dot(camera.Position.Sub(p)) > 0
		sx, sy, _, ok := camera.Project(p, sw, sh)
		visible := ok && facing
		if visible && prevVisible {
			vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(sx), float32(sy), 1, clr, true)
		}
		prevX, prevY, prevVisible = sx, sy, visible
	}
}

// drawLabel рисует подпись с размером, зависящим от расстояния до камеры.
func (r *SceneRenderer) drawLabel(screen *ebiten.Image, label *component.Label, camera *geom.Camera) {
	if label == nil || label.Font == nil {
		return
	}
	sx, sy, depth, ok := camera.Project(vec(&label.Position), float64(r.screenWidth), float64(r.screenHeight))
	if !ok {
		return
	}
	px := label.Size * camera.FocalLength(float64(r.screenHeight)) / depth
	if px < config.MinLabelPixels {
		return
	}
	px = utils.Clamp(px, config.MinLabelPixels, config.MaxLabelPixels)

	face := r.faces.FaceFor(label.Font, px)
	if face == nil {
		return
	}
	text.Draw(screen, label.Text, face, int(sx), int(sy), label.Color)
}

func vec(p *component.Position) mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}
