// internal/system/orbit.go
package system

import (
	"math"

	"member-solar-system/internal/config"
	"member-solar-system/internal/entity"
	"member-solar-system/internal/utils"
)

// OrbitSystem двигает тела по круговым орбитам в плоскости XY.
type OrbitSystem struct {
	ecs *entity.ECS
}

func NewOrbitSystem(ecs *entity.ECS) *OrbitSystem {
	return &OrbitSystem{ecs: ecs}
}

// Update сдвигает угол каждого тела на speed×dt и пересчитывает позицию.
// Центральное тело не имеет компонента Orbit и не трогается.
func (s *OrbitSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.Bodies {
		orbit, ok := s.ecs.Orbits[id]
		if !ok {
			continue
		}
		orbit.Angle = utils.WrapAngle(orbit.Angle + orbit.Speed*deltaTime)
		orbit.Spin = utils.WrapAngle(orbit.Spin + config.SpinPerFrame)

		if pos, ok := s.ecs.Positions[id]; ok {
			pos.X, pos.Y = OrbitPosition(orbit.Distance, orbit.Angle)
			pos.Z = 0
		}
	}
}

// OrbitPosition — точка на орбите радиуса distance для угла angle.
func OrbitPosition(distance, angle float64) (x, y float64) {
	return distance * math.Cos(angle), distance * math.Sin(angle)
}

// OrbitSpeed — угловая скорость: чем дальше тело, тем медленнее.
func OrbitSpeed(speedConstant, distance float64) float64 {
	return speedConstant / distance
}
