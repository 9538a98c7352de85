package ecs

import (
	"github.com/phanxgames/thicket"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for thicket interaction events.
// Events are queued on publish and delivered by ProcessEvents.
var InteractionEventType = events.NewEventType[thicket.InteractionEvent]()

type donburiStore struct {
	world donburi.World
	types map[thicket.EventType]bool
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with Subscribe and ProcessEvents. When types is non-empty only
// events of those types are published.
func NewDonburiStore(world donburi.World, types ...thicket.EventType) thicket.EntityStore {
	s := &donburiStore{world: world}
	if len(types) > 0 {
		s.types = make(map[thicket.EventType]bool, len(types))
		for _, t := range types {
			s.types[t] = true
		}
	}
	return s
}

func (s *donburiStore) EmitEvent(event thicket.InteractionEvent) {
	if s.types != nil && !s.types[event.Type] {
		return
	}
	InteractionEventType.Publish(s.world, event)
}
