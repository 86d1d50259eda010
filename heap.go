package shufflebag

// Binary max-heap engine implementation.
// Pairs are ordered by priority only, value never takes part in comparison.
type heap[T any] struct {
	buf []pair[T]
}

func (e *heap[T]) init(config *Config) {
	e.buf = make([]pair[T], 0, config.Capacity)
}

func (e *heap[T]) push(p pair[T]) {
	e.buf = append(e.buf, p)
	e.up(len(e.buf) - 1)
}

func (e *heap[T]) pop() (p pair[T], ok bool) {
	n := len(e.buf)
	if n == 0 {
		return
	}
	p, ok = e.buf[0], true
	last := n - 1
	e.buf[0] = e.buf[last]
	// Release value reference for GC.
	e.buf[last] = pair[T]{}
	e.buf = e.buf[:last]
	if last > 0 {
		e.down(0)
	}
	return
}

func (e *heap[T]) size() int {
	return len(e.buf)
}

func (e *heap[T]) less(i, j int) bool {
	return e.buf[i].priority > e.buf[j].priority
}

func (e *heap[T]) swap(i, j int) {
	e.buf[i], e.buf[j] = e.buf[j], e.buf[i]
}

// up moves the element at index i up to its proper position.
func (e *heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !e.less(i, parent) {
			break
		}
		e.swap(i, parent)
		i = parent
	}
}

// down moves the element at index i down to its proper position.
func (e *heap[T]) down(i int) {
	n := len(e.buf)
	for {
		top := i
		l, r := 2*i+1, 2*i+2
		if l < n && e.less(l, top) {
			top = l
		}
		if r < n && e.less(r, top) {
			top = r
		}
		if top == i {
			return
		}
		e.swap(i, top)
		i = top
	}
}
