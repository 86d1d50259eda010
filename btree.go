package shufflebag

import "github.com/google/btree"

// B-tree engine implementation.
type btreeEngine[T any] struct {
	t   *btree.BTreeG[bitem[T]]
	seq uint64
}

// B-tree item. B-tree can't keep equal items, so seq distinguishes pairs with the same priority.
type bitem[T any] struct {
	pair[T]
	seq uint64
}

func (e *btreeEngine[T]) init(config *Config) {
	e.t = btree.NewG[bitem[T]](config.BTreeDegree, func(a, b bitem[T]) bool {
		if a.priority == b.priority {
			return a.seq < b.seq
		}
		return a.priority < b.priority
	})
}

func (e *btreeEngine[T]) push(p pair[T]) {
	e.seq++
	e.t.ReplaceOrInsert(bitem[T]{pair: p, seq: e.seq})
}

func (e *btreeEngine[T]) pop() (pair[T], bool) {
	itm, ok := e.t.DeleteMax()
	return itm.pair, ok
}

func (e *btreeEngine[T]) size() int {
	return e.t.Len()
}
