package memseed

// Table is an insertion-ordered set of named definitions.
type Table[T any] struct {
	Names []string      `json:"names"`
	Items map[string]*T `json:"items"`
}

func newTable[T any]() Table[T] {
	return Table[T]{Items: map[string]*T{}}
}

// Get returns the definition stored under name.
func (t *Table[T]) Get(name string) (*T, bool) {
	v, ok := t.Items[name]
	return v, ok
}

// Has reports whether name is defined.
func (t *Table[T]) Has(name string) bool {
	_, ok := t.Items[name]
	return ok
}

// Put stores v under name, keeping the original position of an existing name.
func (t *Table[T]) Put(name string, v *T) {
	if t.Items == nil {
		t.Items = map[string]*T{}
	}
	if _, ok := t.Items[name]; !ok {
		t.Names = append(t.Names, name)
	}
	t.Items[name] = v
}

// Rename moves name to newName. It fails if name is missing or newName is taken.
func (t *Table[T]) Rename(name, newName string) bool {
	v, ok := t.Items[name]
	if !ok || t.Has(newName) {
		return false
	}
	delete(t.Items, name)
	t.Items[newName] = v
	for i, n := range t.Names {
		if n == name {
			t.Names[i] = newName
		}
	}
	return true
}

// Delete removes name and reports whether it existed.
func (t *Table[T]) Delete(name string) bool {
	if _, ok := t.Items[name]; !ok {
		return false
	}
	delete(t.Items, name)
	for i, n := range t.Names {
		if n == name {
			t.Names = append(t.Names[:i], t.Names[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of definitions.
func (t *Table[T]) Len() int {
	return len(t.Names)
}

// List returns a copy of the names in insertion order.
func (t *Table[T]) List() []string {
	out := make([]string, len(t.Names))
	copy(out, t.Names)
	return out
}
