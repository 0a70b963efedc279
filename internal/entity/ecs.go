package entity

import (
	"member-solar-system/internal/component"
	"member-solar-system/internal/types"
)

// ECS хранит компоненты сцены. Тела создаются один раз при старте и живут до конца процесса.
type ECS struct {
	SceneTime   float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Orbits      map[types.EntityID]*component.Orbit
	Renderables map[types.EntityID]*component.Renderable
	Roles       map[types.EntityID]*component.Role
	Labels      map[types.EntityID]*component.Label
	Highlights  map[types.EntityID]*component.Highlight
	Centrals    map[types.EntityID]*component.Central

	// Bodies — орбитальные тела в порядке создания.
	// Итерация по map недетерминирована, а порядок нужен для выбора при равных расстояниях.
	Bodies []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Orbits:      make(map[types.EntityID]*component.Orbit),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Roles:       make(map[types.EntityID]*component.Role),
		Labels:      make(map[types.EntityID]*component.Label),
		Highlights:  make(map[types.EntityID]*component.Highlight),
		Centrals:    make(map[types.EntityID]*component.Central),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// IsBody сообщает, является ли сущность орбитальным телом.
func (ecs *ECS) IsBody(id types.EntityID) bool {
	_, ok := ecs.Orbits[id]
	return ok
}
