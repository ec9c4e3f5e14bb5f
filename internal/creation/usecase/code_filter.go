package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// CodeFilter remembers every code minted so far. A negative answer is
// definitive; a positive one may be a false positive and must be confirmed
// against the store.
type CodeFilter struct {
	mu     sync.RWMutex
	filter *bloom.BloomFilter
}

// NewCodeFilter sizes the filter for expected codes at false-positive rate fp.
func NewCodeFilter(expected uint, fp float64) *CodeFilter {
	if expected == 0 {
		expected = 1_000_000
	}
	if fp <= 0 || fp >= 1 {
		fp = 0.01
	}
	return &CodeFilter{filter: bloom.NewWithEstimates(expected, fp)}
}

func (f *CodeFilter) Add(code string) {
	f.mu.Lock()
	f.filter.AddString(code)
	f.mu.Unlock()
}

// MayContain reports whether code might already be taken.
func (f *CodeFilter) MayContain(code string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.filter.TestString(code)
}

// Warm loads every stored code into the filter and returns how many were added.
func (f *CodeFilter) Warm(ctx context.Context, repo LinkRepository) (int, error) {
	codes, err := repo.ListCodes(ctx)
	if err != nil {
		return 0, fmt.Errorf("list codes: %w", err)
	}

	f.mu.Lock()
	for _, c := range codes {
		f.filter.AddString(c)
	}
	f.mu.Unlock()
	return len(codes), nil
}
