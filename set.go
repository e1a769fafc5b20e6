package symtable

// Set is a set of symbols: a Table without values.
type Set struct {
	t table[struct{}]
}

func NewSet(opts ...Option[struct{}]) *Set {
	var ss Set
	ss.t.init(opts...)

	return &ss
}

// Has reports whether key is in the set.
func (ss *Set) Has(key string) bool {
	return ss.t.Contains(key)
}

// Add puts key in the set. It returns ErrDuplicateKey if key is already
// there.
func (ss *Set) Add(key string) error {
	return ss.t.Put(key, struct{}{})
}

// Delete removes key from the set and reports whether it was there.
func (ss *Set) Delete(key string) bool {
	_, ok := ss.t.Remove(key)
	return ok
}

func (ss *Set) Len() int {
	return ss.t.Len()
}

// Keys returns every key in the set, in bucket order.
func (ss *Set) Keys() []string {
	return ss.t.Keys()
}

func (ss *Set) Stats() Stats {
	return ss.t.Stats()
}

func (ss *Set) Reset() {
	ss.t.Reset()
}

func (ss *Set) Free() {
	ss.t.Free()
}
