package platform

import "testing"

func TestEbitenDriverCloseRetriedWhenQueueFull(t *testing.T) {
	d := NewEbitenDriver()
	for i := 0; i < ebitenEventCap; i++ {
		if !d.push(RawEvent{Kind: EventKeySpace}) {
			t.Fatalf("push %d failed before the queue was full", i)
		}
	}

	d.requestClose()
	if d.closeQueued {
		t.Fatal("close marked queued although the queue was full")
	}
	if d.dropped.Load() != 1 {
		t.Errorf("dropped = %d, want 1", d.dropped.Load())
	}

	if _, ok := d.PollEvent(); !ok {
		t.Fatal("expected a queued event")
	}
	d.requestClose()
	if !d.closeQueued {
		t.Fatal("close not queued once there was room")
	}

	var last RawEvent
	n := 0
	for {
		ev, ok := d.PollEvent()
		if !ok {
			break
		}
		last = ev
		n++
	}
	if n != ebitenEventCap || last.Kind != EventExit {
		t.Errorf("drained %d events ending in %v, want %d ending in exit", n, last.Kind, ebitenEventCap)
	}

	// Later frames of the same close request do not queue more exits.
	d.requestClose()
	if _, ok := d.PollEvent(); ok {
		t.Error("exit queued twice for one close request")
	}
}
