// internal/system/pick.go
package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"member-solar-system/internal/config"
	"member-solar-system/internal/entity"
	"member-solar-system/internal/event"
	"member-solar-system/internal/types"
	"member-solar-system/pkg/geom"
)

// PickSystem находит тело под лучом и переключает подсветку.
type PickSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewPickSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PickSystem {
	return &PickSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Pick возвращает ближайшее по параметру луча тело.
// Пересечения ближе near и дальше far отбрасываются, центральное тело не проверяется.
func (s *PickSystem) Pick(ray geom.Ray, near, far float64) (types.EntityID, bool) {
	var (
		best  types.EntityID
		bestT = math.Inf(1)
	)
	for _, id := range s.ecs.Bodies {
		if _, central := s.ecs.Centrals[id]; central {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		render, hasRender := s.ecs.Renderables[id]
		if !hasPos || !hasRender {
			continue
		}
		t, hit := ray.IntersectSphere(mgl64.Vec3{pos.X, pos.Y, pos.Z}, render.EffectiveRadius())
		if !hit || t < near || t > far {
			continue
		}
		if t < bestT {
			best, bestT = id, t
		}
	}
	return best, best != 0
}

// Highlight увеличивает тело и включает свечение.
func (s *PickSystem) Highlight(id types.EntityID) {
	if render, ok := s.ecs.Renderables[id]; ok {
		render.Scale = config.HoverScale
		render.Emissive = config.HoverEmissive
	}
	if h, ok := s.ecs.Highlights[id]; ok {
		h.Active = true
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.BodyHovered, Data: id})
}

// Unhighlight возвращает телу обычный вид.
func (s *PickSystem) Unhighlight(id types.EntityID) {
	if render, ok := s.ecs.Renderables[id]; ok {
		render.Scale = 1
		render.Emissive = config.NoEmissive
	}
	if h, ok := s.ecs.Highlights[id]; ok {
		h.Active = false
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.BodyUnhovered, Data: id})
}
