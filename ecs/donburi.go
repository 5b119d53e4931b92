package ecs

import (
	"github.com/phanxgames/platform"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WindowEventType is the Donburi event type for platform window events.
// Subscribe to this in your ECS systems to receive key, click, expose and
// exit events.
var WindowEventType = events.NewEventType[platform.RawEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Window events are published to WindowEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) platform.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(ev platform.RawEvent) {
	WindowEventType.Publish(s.world, ev)
}
