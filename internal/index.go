package internal

// Index maps keys to the handle of their entry in a RecencyList.
// The zero value for Index is an empty index ready to use.
type Index[K comparable] struct {
	handles map[K]Handle
}

// NewIndex returns an empty index sized for sizeHint keys.
func NewIndex[K comparable](sizeHint int) *Index[K] {
	return &Index[K]{handles: make(map[K]Handle, sizeHint)}
}

// Lookup returns the handle stored for key.
func (x *Index[K]) Lookup(key K) (Handle, bool) {
	h, ok := x.handles[key]
	return h, ok
}

// Put points key at h, replacing any previous handle.
func (x *Index[K]) Put(key K, h Handle) {
	if x.handles == nil {
		x.handles = make(map[K]Handle)
	}
	x.handles[key] = h
}

// Delete drops key from the index.
func (x *Index[K]) Delete(key K) {
	delete(x.handles, key)
}

// Len returns the number of indexed keys.
func (x *Index[K]) Len() int {
	return len(x.handles)
}

// Clear removes every key.
func (x *Index[K]) Clear() {
	clear(x.handles)
}
