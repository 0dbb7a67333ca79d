package system

import (
	"go-lawn-defense/internal/component"
	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/entity"
	"go-lawn-defense/internal/event"
	"go-lawn-defense/internal/types"
	"go-lawn-defense/internal/utils"
)

// ResourceBounds задаёт, где может появиться падающий ресурс.
type ResourceBounds struct {
	MinX, MaxX             float64
	MinTargetY, MaxTargetY float64
}

// DefaultResourceBounds — границы из конфигурации.
func DefaultResourceBounds() ResourceBounds {
	return ResourceBounds{
		MinX:       config.ResourceMinX,
		MaxX:       config.ResourceMaxX,
		MinTargetY: config.ResourceMinTargetY,
		MaxTargetY: config.ResourceMaxTargetY,
	}
}

// ResourceSystem создаёт, роняет и состаривает ресурсы.
type ResourceSystem struct {
	world           *entity.World
	bounds          ResourceBounds
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewResourceSystem(world *entity.World, bounds ResourceBounds, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *ResourceSystem {
	return &ResourceSystem{
		world:           world,
		bounds:          bounds,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// SpawnFromSky создаёт ресурс над полем со случайной точкой приземления.
func (s *ResourceSystem) SpawnFromSky() *component.Resource {
	x := s.rng.IntBetween(int(s.bounds.MinX), int(s.bounds.MaxX))
	target := s.rng.IntBetween(int(s.bounds.MinTargetY), int(s.bounds.MaxTargetY))
	return s.add(&component.Resource{
		Pos:     component.Pos(float64(x), 0),
		TargetY: float64(target),
		Speed:   config.ResourceFallSpeed,
		Value:   config.ResourceValue,
		TTL:     config.ResourceTTLTicks,
		Source:  component.FromSky,
	})
}

// SpawnAt создаёт неподвижный ресурс (от генератора).
func (s *ResourceSystem) SpawnAt(x, y float64, value int) *component.Resource {
	return s.add(&component.Resource{
		Pos:     component.Pos(x, y),
		TargetY: y,
		Value:   value,
		TTL:     config.ResourceTTLTicks,
		Source:  component.FromGenerator,
	})
}

func (s *ResourceSystem) add(r *component.Resource) *component.Resource {
	r.ID = s.world.NewEntity()
	s.world.Resources = append(s.world.Resources, r)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ResourceSpawned, Data: r.ID})
	return r
}

// Update роняет ресурсы до точки приземления и уменьшает время жизни.
func (s *ResourceSystem) Update() {
	for _, r := range s.world.Resources {
		if r.Collected {
			continue
		}
		if r.Pos.Y() < r.TargetY {
			r.Pos[1] += r.Speed
			if r.Pos.Y() > r.TargetY {
				r.Pos[1] = r.TargetY
			}
		}
		if r.TTL > 0 {
			r.TTL--
		}
	}
}

// Collect убирает ресурс с поля и возвращает его ценность.
// ok == false, если ресурса нет или он уже собран/истёк.
func (s *ResourceSystem) Collect(id types.EntityID) (int, bool) {
	r := s.world.Resource(id)
	if r == nil || r.Collected || r.Expired() {
		return 0, false
	}
	r.Collected = true
	s.world.RemoveResource(id)
	return r.Value, true
}

// At возвращает первый несобранный ресурс в радиусе клика от точки.
func (s *ResourceSystem) At(x, y float64) (types.EntityID, bool) {
	p := component.Pos(x, y)
	for _, r := range s.world.Resources {
		if r.Collected || r.Expired() {
			continue
		}
		if r.Pos.Sub(p).Len() <= config.ResourceClickRadius {
			return r.ID, true
		}
	}
	return 0, false
}
