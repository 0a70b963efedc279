// internal/system/label.go
package system

import (
	"log"

	"member-solar-system/internal/component"
	"member-solar-system/internal/config"
	"member-solar-system/internal/entity"
	"member-solar-system/internal/event"
	"member-solar-system/internal/types"
)

// LabelOffset — смещение подписи относительно тела.
var LabelOffset = component.Position{Y: config.LabelOffsetY}

// LabelSystem держит подписи над телами.
// Подпись может появиться позже тела или не появиться вовсе.
type LabelSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewLabelSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *LabelSystem {
	return &LabelSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Attach привязывает подпись к телу. Привязка происходит один раз:
// повторная подпись для того же тела игнорируется.
func (s *LabelSystem) Attach(id types.EntityID, label *component.Label) bool {
	if !s.ecs.IsBody(id) {
		return false
	}
	if _, exists := s.ecs.Labels[id]; exists {
		return false
	}
	if pos, ok := s.ecs.Positions[id]; ok {
		label.Position = pos.Add(LabelOffset)
	}
	s.ecs.Labels[id] = label
	if config.Verbose {
		log.Printf("Label %q attached to entity %d", label.Text, id)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.LabelAttached, Data: id})
	return true
}

// Update переносит каждую существующую подпись к её телу.
func (s *LabelSystem) Update() {
	for _, id := range s.ecs.Bodies {
		label, ok := s.ecs.Labels[id]
		if !ok {
			continue
		}
		if pos, ok := s.ecs.Positions[id]; ok {
			label.Position = pos.Add(LabelOffset)
		}
	}
}
