// Package ecs provides ECS adapters for platform's event system.
//
// The primary adapter is [NewDonburiSink], which forwards every event a
// window hands out through Event.Poll into a [Donburi] world as a typed
// event. Subscribe to [WindowEventType] in your ECS systems to receive them,
// or use [NewEventCounter] for a ready-made tally.
//
// Usage:
//
//	win.SetEventSink(ecs.NewDonburiSink(world))
//	counter := ecs.NewEventCounter(world)
//	// once per frame
//	ecs.Process(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
