package bounce

// Mover is a point moving along one axis between Min and Max. Size is the
// extent of the moving object, so X stays within [Min, Max-Size].
type Mover struct {
	X        float64
	Velocity float64 // units per second; the sign is the direction
	Size     float64
	Min, Max float64
}

// Step advances X by Velocity*dt. When the object touches or crosses a
// bound while moving toward it, the velocity is reflected and X is clamped
// back into range; Step then reports true. Negative dt is treated as zero.
//
// Only motion toward a bound reflects, so an object resting on a bound
// (after a zero dt, or a Reverse that already points it away) is not
// flipped a second time.
func (m *Mover) Step(dt float64) bool {
	if dt > 0 {
		m.X += m.Velocity * dt
	}
	hi := m.Max - m.Size
	flipped := false
	switch {
	case m.X <= m.Min && m.Velocity < 0:
		m.Velocity = -m.Velocity
		flipped = true
	case m.X >= hi && m.Velocity > 0:
		m.Velocity = -m.Velocity
		flipped = true
	}
	m.X = max(m.Min, min(m.X, hi))
	return flipped
}

// Reverse flips the direction of travel.
func (m *Mover) Reverse() {
	m.Velocity = -m.Velocity
}
