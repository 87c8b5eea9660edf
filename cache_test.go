package lrustore

import (
	"errors"
	"math"
	"reflect"
	"sync"
	"testing"

	"lrustore/store"
)

func TestCache_Scenario(t *testing.T) {
	c, err := New[int, int](5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 1; i <= 4; i++ {
		if _, err := c.Set(i, i); err != nil {
			t.Fatalf("Set(%d): %v", i, err)
		}
	}
	if v, ok := c.Get(1); !ok || v != 1 {
		t.Fatalf("Get(1) = %d, %v", v, ok)
	}
	if v, ok := c.Get(2); !ok || v != 2 {
		t.Fatalf("Get(2) = %d, %v", v, ok)
	}
	if _, ok := c.Get(9); ok {
		t.Fatalf("Get(9) hit")
	}
	c.Set(5, 5)
	c.Set(6, 6)
	if _, ok := c.Get(3); ok {
		t.Fatalf("3 should have been evicted")
	}
	if got, want := c.Keys(), []int{4, 1, 2, 5, 6}; !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
}

func TestCache_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -3} {
		if _, err := New[string, int](capacity); !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("New(%d) err = %v", capacity, err)
		}
	}
}

func TestCache_HugeCapacity(t *testing.T) {
	c, err := New[string, int](math.MaxInt)
	if err != nil {
		t.Fatalf("New(math.MaxInt): %v", err)
	}
	c.Set("a", 1)
	c.Set("b", 2)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %d, %v", v, ok)
	}
	if got, want := c.Keys(), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
}

func TestCache_SecondOnEvictRejected(t *testing.T) {
	noop := func(string, int) {}
	_, err := NewWithOnEvict[string, int](2, noop, store.WithOnEvict[string, int](noop))
	if !errors.Is(err, ErrOnEvictSet) {
		t.Fatalf("err = %v, want ErrOnEvictSet", err)
	}
	if _, err := New[string, int](2, store.WithOnEvict[string, int](noop)); err != nil {
		t.Fatalf("single store callback rejected: %v", err)
	}
}

func TestCache_InvalidValue(t *testing.T) {
	c, err := New[string, int](2, store.WithValidator[string, int](func(v int) error {
		if v < 0 {
			return errors.New("negative")
		}
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Set("a", -1); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Set err = %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("rejected value stored")
	}
	if _, _, _, err := c.PeekOrAdd("a", -1); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("PeekOrAdd err = %v", err)
	}
}

func TestCache_OnEvictOutsideLock(t *testing.T) {
	var c *Cache[int, int]
	var evicted []int
	c, err := NewWithOnEvict[int, int](2, func(k, _ int) {
		evicted = append(evicted, k)
		// re-entering must not deadlock
		_ = c.Len()
	})
	if err != nil {
		t.Fatal(err)
	}

	c.Set(1, 1)
	c.Set(2, 2)
	if evictedNow, _ := c.Set(3, 3); !evictedNow {
		t.Fatalf("Set(3) should evict")
	}
	if !c.Remove(2) {
		t.Fatalf("Remove(2) missed")
	}
	c.Set(4, 4)
	if k, _, ok := c.RemoveOldest(); !ok || k != 3 {
		t.Fatalf("RemoveOldest = %d, %v", k, ok)
	}
	c.Purge()
	if want := []int{1, 2, 3, 4}; !reflect.DeepEqual(evicted, want) {
		t.Fatalf("evicted = %v, want %v", evicted, want)
	}
}

func TestCache_ContainsOrAddPeekOrAdd(t *testing.T) {
	c, err := New[string, int](1)
	if err != nil {
		t.Fatal(err)
	}
	ok, evicted, err := c.ContainsOrAdd("a", 1)
	if ok || evicted || err != nil {
		t.Fatalf("ContainsOrAdd(a) = %v %v %v", ok, evicted, err)
	}
	ok, _, _ = c.ContainsOrAdd("a", 2)
	if !ok {
		t.Fatalf("a should be present")
	}
	if v, _ := c.Peek("a"); v != 1 {
		t.Fatalf("ContainsOrAdd overwrote a: %d", v)
	}

	prev, ok, _, _ := c.PeekOrAdd("a", 3)
	if !ok || prev != 1 {
		t.Fatalf("PeekOrAdd(a) = %d, %v", prev, ok)
	}
	_, ok, evicted, _ = c.PeekOrAdd("b", 2)
	if ok || !evicted {
		t.Fatalf("PeekOrAdd(b) ok %v evicted %v", ok, evicted)
	}
	if c.Contains("a") {
		t.Fatalf("a should be evicted")
	}
	if k, v, ok := c.GetOldest(); !ok || k != "b" || v != 2 {
		t.Fatalf("GetOldest = %q %d %v", k, v, ok)
	}
}

func TestCache_Resize(t *testing.T) {
	c, err := New[int, int](4)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		c.Set(i, i*10)
	}
	n, err := c.Resize(1)
	if err != nil || n != 3 {
		t.Fatalf("Resize(1) = %d, %v", n, err)
	}
	if c.Cap() != 1 || c.Len() != 1 {
		t.Fatalf("cap %d len %d", c.Cap(), c.Len())
	}
	if got, want := c.Values(), []int{30}; !reflect.DeepEqual(got, want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
	if _, err := c.Resize(0); !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("Resize(0) err = %v", err)
	}
}

func TestCache_Concurrent(t *testing.T) {
	const (
		capacity = 16
		workers  = 8
		ops      = 1000
	)
	c, err := New[int, int](capacity)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < ops; i++ {
				key := (w*ops + i) % (capacity * 2)
				if i%2 == 0 {
					c.Set(key, i)
				} else {
					c.Get(key)
				}
				if n := c.Len(); n > capacity {
					t.Errorf("len %d exceeds capacity", n)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	if got := len(c.Keys()); got != c.Len() {
		t.Fatalf("keys %d, len %d", got, c.Len())
	}
}
