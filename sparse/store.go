// SPDX-License-Identifier: MIT

package sparse

import "github.com/google/btree"

// storeDegree is the B-tree branching degree; small trees dominate (rows of
// sparse matrices), so a modest degree keeps nodes compact.
const storeDegree = 8

// entry is a single physically stored (index, value) pair.
type entry[V any] struct {
	index int
	value V
}

func lessEntry[V any](a, b entry[V]) bool { return a.index < b.index }

// store is an ordered index→value map. Iteration is always index-ascending.
// It knows nothing about sparsity; callers decide what gets stored.
type store[V any] struct {
	tree *btree.BTreeG[entry[V]]
}

func newStore[V any]() *store[V] {
	return &store[V]{tree: btree.NewG[entry[V]](storeDegree, lessEntry[V])}
}

func (s *store[V]) get(i int) (V, bool) {
	e, ok := s.tree.Get(entry[V]{index: i})
	return e.value, ok
}

func (s *store[V]) has(i int) bool { return s.tree.Has(entry[V]{index: i}) }

func (s *store[V]) put(i int, v V) { s.tree.ReplaceOrInsert(entry[V]{index: i, value: v}) }

func (s *store[V]) remove(i int) bool {
	_, ok := s.tree.Delete(entry[V]{index: i})
	return ok
}

func (s *store[V]) len() int { return s.tree.Len() }

// ascend visits entries in index order until fn returns false.
func (s *store[V]) ascend(fn func(i int, v V) bool) {
	s.tree.Ascend(func(e entry[V]) bool { return fn(e.index, e.value) })
}

// entries snapshots the stored pairs so callers may mutate the store afterwards.
func (s *store[V]) entries() []entry[V] {
	out := make([]entry[V], 0, s.tree.Len())
	s.tree.Ascend(func(e entry[V]) bool {
		out = append(out, e)
		return true
	})

	return out
}

// clone copies the tree structure. Values are copied as-is, so stores of
// pointers still share the pointees; Matrix deep-copies its rows itself.
func (s *store[V]) clone() *store[V] { return &store[V]{tree: s.tree.Clone()} }
