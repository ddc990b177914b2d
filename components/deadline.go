package components

// Deadline is an absolute simulated time at which something should happen.
// It remembers the generation it was armed in so a deadline that outlives a
// reset can be told apart from a live one.
type Deadline struct {
	At    float64
	Gen   uint64
	Armed bool
}

func (d *Deadline) Arm(at float64, gen uint64) {
	d.At = at
	d.Gen = gen
	d.Armed = true
}

func (d *Deadline) Cancel() {
	*d = Deadline{}
}

func (d *Deadline) Pending() bool { return d.Armed }

// Poll reports whether the deadline fired at now. A deadline from another
// generation is disarmed and reported as stale instead.
func (d *Deadline) Poll(now float64, gen uint64) (fired, stale bool) {
	if !d.Armed {
		return false, false
	}
	if d.Gen != gen {
		d.Cancel()
		return false, true
	}
	if now < d.At {
		return false, false
	}
	d.Cancel()
	return true, false
}
