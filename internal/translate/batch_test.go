package translate

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func numberedItems(n int) []TranslationItem {
	items := make([]TranslationItem, n)
	for i := range items {
		items[i] = TranslationItem{Index: i * 2, Text: "x"}
	}
	return items
}

func echo(_ context.Context, items []TranslationItem) ([]TranslationResult, error) {
	results := make([]TranslationResult, len(items))
	for i := range items {
		// reversed within the batch to check the final sort
		item := items[len(items)-1-i]
		results[i] = TranslationResult{Index: item.Index, Text: item.Text}
	}
	return results, nil
}

func TestSplitBatches(t *testing.T) {
	batches := splitBatches(numberedItems(7), 3)
	if len(batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(batches))
	}
	if len(batches[2]) != 1 {
		t.Errorf("expected last batch of 1, got %d", len(batches[2]))
	}
}

func TestRunBatchesSortsResults(t *testing.T) {
	for _, concurrency := range []int{0, 1, 4} {
		results, err := runBatches(context.Background(), numberedItems(23), 5, concurrency, echo)
		if err != nil {
			t.Fatalf("concurrency %d: unexpected error: %v", concurrency, err)
		}
		if len(results) != 23 {
			t.Fatalf("concurrency %d: expected 23 results, got %d", concurrency, len(results))
		}
		for i := 1; i < len(results); i++ {
			if results[i-1].Index >= results[i].Index {
				t.Fatalf("concurrency %d: results not sorted at %d", concurrency, i)
			}
		}
	}
}

func TestRunBatchesEmpty(t *testing.T) {
	results, err := runBatches(context.Background(), nil, 5, 2, echo)
	if err != nil || len(results) != 0 {
		t.Errorf("expected empty results, got %v, %v", results, err)
	}
}

func TestRunBatchesStopsOnError(t *testing.T) {
	boom := errors.New("rate limited")
	var calls atomic.Int32

	failing := func(ctx context.Context, items []TranslationItem) ([]TranslationResult, error) {
		calls.Add(1)
		if items[0].Index == 0 {
			return nil, boom
		}
		return echo(ctx, items)
	}

	_, err := runBatches(context.Background(), numberedItems(40), 2, 1, failing)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("expected remaining batches to be skipped, got %d calls", calls.Load())
	}
}

func TestRunBatchesCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runBatches(ctx, numberedItems(10), 2, 2, echo)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
