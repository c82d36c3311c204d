package ecs

import (
	"github.com/phanxgames/reveal"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WidgetEventType is the Donburi event type for reveal widget events.
var WidgetEventType = events.NewEventType[reveal.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events
// are queued on WidgetEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) reveal.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event reveal.Event) {
	WidgetEventType.Publish(s.world, event)
}
