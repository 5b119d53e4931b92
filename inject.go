package platform

// InjectEvent queues a synthetic event. Injected events are handed out by
// Event.Poll before anything the driver reports, one per Poll call, in the
// order they were queued.
func (w *Window) InjectEvent(ev RawEvent) {
	w.injectQueue = append(w.injectQueue, ev)
}

// InjectKey queues a synthetic key event (or any non-pointer kind).
func (w *Window) InjectKey(kind EventKind) {
	w.InjectEvent(RawEvent{Kind: kind})
}

// InjectClick queues a left click at the given window coordinates.
func (w *Window) InjectClick(x, y int) {
	w.InjectEvent(RawEvent{Kind: EventLeftClick, X: x, Y: y})
}

// PendingInjected returns the number of injected events not yet polled.
func (w *Window) PendingInjected() int {
	return len(w.injectQueue)
}
