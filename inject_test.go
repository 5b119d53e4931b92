package platform

import "testing"

func TestInjectClick(t *testing.T) {
	win, _ := newTestWindow(t, 100, 100)
	win.InjectClick(50, 40)
	if win.PendingInjected() != 1 {
		t.Fatalf("expected 1 queued event, got %d", win.PendingInjected())
	}

	e := NewEvent(win)
	if !e.Poll() {
		t.Fatal("expected injected click")
	}
	if e.Kind() != EventLeftClick || e.X() != 50 || e.Y() != 40 {
		t.Errorf("event = %+v, want left click at (50, 40)", e.Raw())
	}
	if win.PendingInjected() != 0 {
		t.Errorf("expected empty queue, got %d", win.PendingInjected())
	}
}

func TestInjectBeforeDriverEvents(t *testing.T) {
	win, d := newTestWindow(t, 100, 100)
	d.Push(RawEvent{Kind: EventKeyUp})
	win.InjectKey(EventKeySpace)
	win.InjectKey(EventKeyA)

	e := NewEvent(win)
	var got []EventKind
	for e.Poll() {
		got = append(got, e.Kind())
	}
	want := []EventKind{EventKeySpace, EventKeyA, EventKeyUp}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInjectAfterCloseIsNotDelivered(t *testing.T) {
	win, _ := newTestWindow(t, 10, 10)
	win.InjectKey(EventKeyEsc)
	_ = win.Close()
	if NewEvent(win).Poll() {
		t.Error("closed window delivered an event")
	}
}
