package tagpool

import (
	"errors"
	"sync"
	"testing"
)

func TestAllocator_InOrderNoReuse(t *testing.T) {
	p, err := New(atcg, 2)
	if err != nil {
		t.Fatal(err)
	}
	a := NewAllocator(p)
	want, _ := Generate(atcg, 2, 16)

	for i := 0; i < 16; i++ {
		as, err := a.Next()
		if err != nil {
			t.Fatalf("Next() #%d: %v", i, err)
		}
		if as.Index != uint64(i) || as.Tag != want[i] {
			t.Errorf("Next() #%d = %+v, want {%d %s}", i, as, i, want[i])
		}
	}
	if _, err := a.Next(); !errors.Is(err, ErrExhausted) {
		t.Errorf("17th Next() error = %v, want ErrExhausted", err)
	}
	if a.Used() != 16 {
		t.Errorf("Used() = %d, want 16", a.Used())
	}
}

func TestAllocator_Fits(t *testing.T) {
	p, _ := New([]string{"A", "T"}, 2)
	a := NewAllocator(p)
	if err := a.Fits(4); err != nil {
		t.Errorf("Fits(4) = %v", err)
	}
	if err := a.Fits(5); !errors.Is(err, ErrExhausted) {
		t.Errorf("Fits(5) = %v, want ErrExhausted", err)
	}
	_, _ = a.Next()
	if err := a.Fits(4); !errors.Is(err, ErrExhausted) {
		t.Errorf("Fits(4) after one Next = %v, want ErrExhausted", err)
	}
	if n, ok := a.Remaining(); !ok || n != 3 {
		t.Errorf("Remaining() = %d, %v", n, ok)
	}
}

func TestAllocator_Unbounded(t *testing.T) {
	p, _ := New(atcg, 64)
	a := NewAllocator(p)
	if err := a.Fits(1 << 30); err != nil {
		t.Errorf("Fits on unbounded pool: %v", err)
	}
	if _, ok := a.Remaining(); ok {
		t.Error("Remaining should report unbounded")
	}
}

func TestAllocator_ConcurrentUnique(t *testing.T) {
	p, _ := New(atcg, 6)
	a := NewAllocator(p)

	const workers, per = 8, 100
	var (
		mu   sync.Mutex
		seen = make(map[Tag]bool)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < per; i++ {
				as, err := a.Next()
				if err != nil {
					t.Error(err)
					return
				}
				mu.Lock()
				if seen[as.Tag] {
					t.Errorf("tag %s handed out twice", as.Tag)
				}
				seen[as.Tag] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if len(seen) != workers*per {
		t.Errorf("got %d unique tags, want %d", len(seen), workers*per)
	}
}
