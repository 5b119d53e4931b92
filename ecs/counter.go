package ecs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phanxgames/platform"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventCounter is a system that tallies window events by kind. It only
// sees events after the world's queues are processed.
type EventCounter struct {
	counts map[platform.EventKind]int
	total  int
}

// NewEventCounter subscribes a counter to WindowEventType in world.
func NewEventCounter(world donburi.World) *EventCounter {
	c := &EventCounter{counts: make(map[platform.EventKind]int)}
	WindowEventType.Subscribe(world, c.handle)
	return c
}

func (c *EventCounter) handle(_ donburi.World, ev platform.RawEvent) {
	c.counts[ev.Kind]++
	c.total++
}

// Process delivers all queued events in world to their subscribers.
func Process(world donburi.World) {
	events.ProcessAllEvents(world)
}

// Count returns how many events of kind were delivered.
func (c *EventCounter) Count(kind platform.EventKind) int {
	return c.counts[kind]
}

// Total returns how many events were delivered.
func (c *EventCounter) Total() int {
	return c.total
}

// String lists the counts by kind, e.g. "esc=1 space=3".
func (c *EventCounter) String() string {
	if c.total == 0 {
		return "none"
	}
	kinds := make([]platform.EventKind, 0, len(c.counts))
	for k := range c.counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = fmt.Sprintf("%s=%d", k, c.counts[k])
	}
	return strings.Join(parts, " ")
}
