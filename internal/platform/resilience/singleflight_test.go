package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	var g SingleFlight[[]byte]
	var calls atomic.Int32

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			out, err, _ := g.Do("/bootstrap-static/", func() ([]byte, error) {
				calls.Add(1)
				time.Sleep(20 * time.Millisecond)
				return []byte("ok"), nil
			})
			if err != nil || string(out) != "ok" {
				t.Errorf("unexpected result out=%q err=%v", out, err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one upstream call, got %d", got)
	}
}

func TestSingleFlight_DoesNotRetainResults(t *testing.T) {
	var g SingleFlight[int]
	n := 0
	for i := 0; i < 2; i++ {
		_, _, _ = g.Do("k", func() (int, error) { n++; return n, nil })
	}
	if n != 2 {
		t.Fatalf("expected sequential calls to run twice, got %d", n)
	}
}
