// Package handles gives embedding hosts a fast path around rendering:
// instead of round-tripping big vectors and matrices through text, the
// host keeps an integer handle to the live value and passes that back in.
package handles

import (
	"soc/object"
	"soc/token"
)

// A Table maps int32 handles to retained values. Handles are never
// reused within one table's lifetime; Clear starts the numbering over.
type Table struct {
	store map[int32]object.Object
	next  int32
}

func NewTable() *Table {
	return &Table{store: make(map[int32]object.Object), next: 1}
}

func (t *Table) Create(value object.Object) int32 {
	h := t.next
	t.next++
	t.store[h] = value
	return h
}

func (t *Table) Get(h int32) (object.Object, bool) {
	value, ok := t.store[h]
	return value, ok
}

func (t *Table) Release(h int32) bool {
	if _, ok := t.store[h]; !ok {
		return false
	}
	delete(t.store, h)
	return true
}

// Clone registers a second handle to the same value. Values are not
// mutated through handles, so sharing is safe.
func (t *Table) Clone(h int32) (int32, bool) {
	value, ok := t.store[h]
	if !ok {
		return 0, false
	}
	return t.Create(value), true
}

func (t *Table) Count() int {
	return len(t.store)
}

func (t *Table) Clear() {
	t.store = make(map[int32]object.Object)
	t.next = 1
}

// Bind defines the handle's value under a name in an evaluator
// environment, so scripts can refer to host-held values directly.
func (t *Table) Bind(name string, h int32, env *object.Environment) object.Object {
	value, ok := t.store[h]
	if !ok {
		return object.CreateErr("handle/unknown", token.Token{}, h)
	}
	if !env.Define(name, value) {
		return object.CreateErr("eval/let/exists", token.Token{}, name)
	}
	return value
}
