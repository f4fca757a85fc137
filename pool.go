package flow

// cellPool holds previously rendered, currently unneeded cells for reuse.
// The pool is unbounded and never proactively trimmed: the number of pooled
// cells is naturally limited by the largest rendered window seen so far.
type cellPool[C Cell] struct {
	free []C
}

// poll removes and returns the oldest pooled cell, if any.
func (p *cellPool[C]) poll() (C, bool) {
	if len(p.free) == 0 {
		var zero C
		return zero, false
	}
	c := p.free[0]
	p.free = p.free[1:]
	return c, true
}

// add enqueues a cell for later reuse.
func (p *cellPool[C]) add(c C) {
	p.free = append(p.free, c)
}

func (p *cellPool[C]) size() int {
	return len(p.free)
}
