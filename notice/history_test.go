package notice

import (
	"fmt"
	"sync"
	"testing"
)

func TestHistoryAdd(t *testing.T) {
	h := newHistory(5)
	h.Add(Notice{Message: "a"})
	h.Add(Notice{Message: "b"})
	snap := h.Snapshot()
	if len(snap) != 2 || snap[0].Message != "a" || snap[1].Message != "b" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestHistoryTruncation(t *testing.T) {
	h := newHistory(3)
	for i := 0; i < 5; i++ {
		h.Add(Notice{Message: fmt.Sprint(i)})
	}
	snap := h.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected length 3, got %d", len(snap))
	}
	if snap[0].Message != "2" || snap[2].Message != "4" {
		t.Fatalf("expected oldest entries dropped, got %+v", snap)
	}
}

func TestHistorySnapshotCopy(t *testing.T) {
	h := newHistory(0)
	h.Add(Notice{Message: "data"})
	snap := h.Snapshot()
	snap[0].Message = "X"
	if h.Snapshot()[0].Message == "X" {
		t.Fatal("Snapshot is not a copy; original data was modified")
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := newHistory(0)
	if snap := h.Snapshot(); snap != nil {
		t.Fatalf("expected nil snapshot for empty history, got %v", snap)
	}
	if h.max != DefaultHistory {
		t.Fatalf("expected default max %d, got %d", DefaultHistory, h.max)
	}
}

func TestHistoryConcurrent(t *testing.T) {
	h := newHistory(10)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Add(Notice{Message: "data"})
			h.Snapshot()
		}()
	}
	wg.Wait()
}
