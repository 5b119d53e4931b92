package platform

// Event is a polling cursor over a window's input. Each successful Poll
// replaces the current event; Kind, X and Y describe it until the next one.
type Event struct {
	w   *Window
	cur RawEvent
}

// NewEvent creates an event source for w. Kind reports EventNone until the
// first successful Poll.
func NewEvent(w *Window) *Event {
	return &Event{w: w, cur: RawEvent{Kind: EventNone}}
}

// Poll advances to the next pending event and reports whether there was
// one. It never blocks; drain it with a loop each frame.
func (e *Event) Poll() bool {
	ev, ok := e.w.nextEvent()
	if !ok {
		return false
	}
	e.cur = ev
	return true
}

// Kind returns the kind of the current event.
func (e *Event) Kind() EventKind {
	return e.cur.Kind
}

// X returns the pointer x position of the current click event.
func (e *Event) X() int { return e.cur.X }

// Y returns the pointer y position of the current click event.
func (e *Event) Y() int { return e.cur.Y }

// Raw returns the current event as a value.
func (e *Event) Raw() RawEvent {
	return e.cur
}
