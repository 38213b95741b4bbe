package keymutex

import (
	"sync"
	"testing"
)

func TestKeyMutex_SerializesSameKey(t *testing.T) {
	km := New()

	const workers = 16
	const iterations = 200

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				km.Lock("pair")
				counter++
				km.Unlock("pair")
			}
		}()
	}
	wg.Wait()

	if counter != workers*iterations {
		t.Fatalf("expected %d, got %d", workers*iterations, counter)
	}
}

func TestKeyMutex_IndependentKeys(t *testing.T) {
	km := New()

	km.Lock("a")
	done := make(chan struct{})
	go func() {
		km.Lock("b")
		km.Unlock("b")
		close(done)
	}()
	<-done
	km.Unlock("a")
}

func TestKeyMutex_DropsIdleEntries(t *testing.T) {
	km := New()

	km.Lock("x")
	km.Unlock("x")

	km.mu.Lock()
	n := len(km.locks)
	km.mu.Unlock()
	if n != 0 {
		t.Fatalf("expected empty lock map, got %d entries", n)
	}
}
