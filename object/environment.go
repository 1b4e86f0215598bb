package object

type Environment struct {
	Store map[string]Object
	Ext   *Environment
}

func NewEnvironment() *Environment {
	return &Environment{Store: make(map[string]Object)}
}

func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.Store[name]
	if ok || e.Ext == nil {
		return obj, ok
	}
	return e.Ext.Get(name)
}

func (e *Environment) Exists(name string) bool {
	_, ok := e.Store[name]
	if ok || e.Ext == nil {
		return ok
	}
	return e.Ext.Exists(name)
}

func (e *Environment) ExistsHere(name string) bool {
	_, ok := e.Store[name]
	return ok
}

// Define binds a new name. Declaring a name twice in the same environment
// is the caller's error to report; Define just says whether it happened.
func (e *Environment) Define(name string, val Object) bool {
	if e.ExistsHere(name) {
		return false
	}
	e.Store[name] = val
	return true
}

// Snapshot flattens the visible bindings into a fresh, parentless copy.
// Closures capture by value: later mutation of the source environment is
// invisible through the snapshot.
func (e *Environment) Snapshot() *Environment {
	snap := NewEnvironment()
	for env := e; env != nil; env = env.Ext {
		for k, v := range env.Store {
			if _, ok := snap.Store[k]; !ok {
				snap.Store[k] = v
			}
		}
	}
	return snap
}

// Reset drops every binding but keeps the environment usable.
func (e *Environment) Reset() {
	e.Store = make(map[string]Object)
	e.Ext = nil
}
