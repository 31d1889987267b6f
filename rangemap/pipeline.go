package rangemap

import (
	"sync"

	"github.com/cespare/wait"
)

// A Pipeline applies its stages in order.
type Pipeline []*Map

// Correspond carries v through every stage.
func (p Pipeline) Correspond(v uint64) uint64 {
	for _, m := range p {
		v = m.Correspond(v)
	}
	return v
}

// CorrespondRange carries iv through every stage. The pieces produced by
// one stage are each fed to the next.
func (p Pipeline) CorrespondRange(iv Interval) []Interval {
	if iv.Empty() {
		return nil
	}
	ivs := []Interval{iv}
	for _, m := range p {
		var next []Interval
		for _, iv := range ivs {
			next = append(next, m.CorrespondRange(iv)...)
		}
		ivs = next
	}
	return ivs
}

// LowestPoint returns the smallest value any of vs maps to.
// It reports false if vs is empty.
func (p Pipeline) LowestPoint(vs []uint64) (uint64, bool) {
	var lowest uint64
	found := false
	for _, v := range vs {
		if loc := p.Correspond(v); !found || loc < lowest {
			lowest = loc
			found = true
		}
	}
	return lowest, found
}

// LowestRange returns the smallest value any point of ivs maps to.
// It reports false if ivs holds no points.
func (p Pipeline) LowestRange(ivs []Interval) (uint64, bool) {
	var t lowTracker
	for _, iv := range ivs {
		t.observe(p.CorrespondRange(iv))
	}
	return t.lowest, t.found
}

// LowestRangeParallel is like LowestRange but runs up to workers initial
// intervals concurrently. The stages are never mutated, so each interval
// is processed independently.
func (p Pipeline) LowestRangeParallel(ivs []Interval, workers int) (uint64, bool) {
	if workers <= 1 || len(ivs) <= 1 {
		return p.LowestRange(ivs)
	}
	workers = min(workers, len(ivs))

	var (
		wg   wait.Group
		mu   sync.Mutex
		t    lowTracker
		work = make(chan Interval)
	)
	for i := 0; i < workers; i++ {
		wg.Go(func(quit <-chan struct{}) error {
			var local lowTracker
			for {
				select {
				case <-quit:
					return nil
				case iv, ok := <-work:
					if !ok {
						mu.Lock()
						t.merge(local)
						mu.Unlock()
						return nil
					}
					local.observe(p.CorrespondRange(iv))
				}
			}
		})
	}
	wg.Go(func(quit <-chan struct{}) error {
		defer close(work)
		for _, iv := range ivs {
			select {
			case work <- iv:
			case <-quit:
				return nil
			}
		}
		return nil
	})
	// Nothing above returns an error.
	_ = wg.Wait()
	return t.lowest, t.found
}

type lowTracker struct {
	lowest uint64
	found  bool
}

func (t *lowTracker) observe(ivs []Interval) {
	for _, iv := range ivs {
		if iv.Empty() {
			continue
		}
		if !t.found || iv.Start < t.lowest {
			t.lowest = iv.Start
			t.found = true
		}
	}
}

func (t *lowTracker) merge(u lowTracker) {
	if u.found && (!t.found || u.lowest < t.lowest) {
		t.lowest = u.lowest
		t.found = true
	}
}
