package internal

// Handle identifies a slot in a RecencyList arena.
// The zero Handle is the sentinel root and never refers to a live entry.
type Handle int

// slot is an arena cell holding one entry and its links.
type slot[K comparable, V any] struct {
	// Previous and next handles in the recency ring. Slot 0 is the root:
	// root.next is the front (most recently used) and root.prev is the
	// back (least recently used).
	prev, next Handle

	// live is false for the root and for slots sitting on the free stack.
	live bool

	key   K
	value V
}

// RecencyList is a doubly linked list of entries kept in a dense arena
// and linked by handles instead of pointers.
// The zero value for RecencyList is an empty list ready to use.
type RecencyList[K comparable, V any] struct {
	slots []slot[K, V] // slots[0] is the sentinel root
	free  []Handle     // released slots available for reuse
	len   int          // number of live entries
}

// NewRecencyList returns an initialized list with room for sizeHint entries.
func NewRecencyList[K comparable, V any](sizeHint int) *RecencyList[K, V] {
	l := &RecencyList[K, V]{}
	if sizeHint > 0 {
		l.slots = make([]slot[K, V], 1, sizeHint+1)
	}
	return l.Init()
}

// Init initializes or clears list l. The arena keeps its allocated capacity.
func (l *RecencyList[K, V]) Init() *RecencyList[K, V] {
	clear(l.slots)
	if cap(l.slots) == 0 {
		l.slots = make([]slot[K, V], 1)
	}
	l.slots = l.slots[:1]
	l.free = l.free[:0]
	l.len = 0
	return l
}

// lazyInit lazily initializes a zero list.
func (l *RecencyList[K, V]) lazyInit() {
	if len(l.slots) == 0 {
		l.Init()
	}
}

// Len returns the number of entries of list l.
// The complexity is O(1).
func (l *RecencyList[K, V]) Len() int {
	return l.len
}

// Live reports whether h refers to an entry currently linked into l.
func (l *RecencyList[K, V]) Live(h Handle) bool {
	return h > 0 && int(h) < len(l.slots) && l.slots[h].live
}

// Front returns the most recently used entry or 0 if the list is empty.
func (l *RecencyList[K, V]) Front() Handle {
	if l.len == 0 {
		return 0
	}
	return l.slots[0].next
}

// Back returns the least recently used entry or 0 if the list is empty.
func (l *RecencyList[K, V]) Back() Handle {
	if l.len == 0 {
		return 0
	}
	return l.slots[0].prev
}

// Next returns the entry after h (towards the back) or 0.
func (l *RecencyList[K, V]) Next(h Handle) Handle {
	if !l.Live(h) {
		return 0
	}
	return l.slots[h].next
}

// Prev returns the entry before h (towards the front) or 0.
func (l *RecencyList[K, V]) Prev(h Handle) Handle {
	if !l.Live(h) {
		return 0
	}
	return l.slots[h].prev
}

// Key returns the key stored at h.
func (l *RecencyList[K, V]) Key(h Handle) K {
	return l.slots[h].key
}

// Value returns the value stored at h.
func (l *RecencyList[K, V]) Value(h Handle) V {
	return l.slots[h].value
}

// alloc takes a slot from the free stack or grows the arena.
func (l *RecencyList[K, V]) alloc() Handle {
	if n := len(l.free); n > 0 {
		h := l.free[n-1]
		l.free = l.free[:n-1]
		return h
	}
	l.slots = append(l.slots, slot[K, V]{})
	return Handle(len(l.slots) - 1)
}

// link inserts h after at and increments l.len.
func (l *RecencyList[K, V]) link(h, at Handle) {
	next := l.slots[at].next
	l.slots[h].prev = at
	l.slots[h].next = next
	l.slots[at].next = h
	l.slots[next].prev = h
	l.slots[h].live = true
	l.len++
}

// unlink detaches h from its neighbours and decrements l.len.
func (l *RecencyList[K, V]) unlink(h Handle) {
	s := &l.slots[h]
	l.slots[s.prev].next = s.next
	l.slots[s.next].prev = s.prev
	s.prev, s.next = 0, 0
	s.live = false
	l.len--
}

// PushFront inserts a new entry with key k and value v at the front of l
// and returns its handle.
func (l *RecencyList[K, V]) PushFront(k K, v V) Handle {
	l.lazyInit()
	h := l.alloc()
	l.slots[h].key = k
	l.slots[h].value = v
	l.link(h, 0)
	return h
}

// MoveToFront moves entry h to the front of list l.
// If h is not live in l, the list is not modified.
func (l *RecencyList[K, V]) MoveToFront(h Handle) {
	if !l.Live(h) || l.slots[0].next == h {
		return
	}
	l.unlink(h)
	l.link(h, 0)
}

// Remove unlinks h, releases its slot and returns the entry it held.
// If h is not live in l, the zero key and value are returned.
func (l *RecencyList[K, V]) Remove(h Handle) (k K, v V) {
	if !l.Live(h) {
		return k, v
	}
	l.unlink(h)
	s := &l.slots[h]
	k, v = s.key, s.value
	// drop references so the arena does not pin released values
	var zk K
	var zv V
	s.key, s.value = zk, zv
	l.free = append(l.free, h)
	return k, v
}
