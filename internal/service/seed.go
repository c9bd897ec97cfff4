package service

import (
	"context"
	"slices"
	"sync"
)

// DefaultSeedWorkers is the default number of businesses seeded concurrently.
const DefaultSeedWorkers = 4

// SeedResult is the outcome of seeding one business.
type SeedResult struct {
	Created int
	Err     error
}

// SeedDefaultCategoriesForAll seeds each business in its own unit, running at
// most workers at a time. Every id gets a result; a cancelled context marks
// the businesses that never started with ctx.Err(). Repeated ids are seeded once.
func (s *BusinessService) SeedDefaultCategoriesForAll(ctx context.Context, businessIDs []int64, workers int) map[int64]SeedResult {
	if workers <= 0 {
		workers = DefaultSeedWorkers
	}

	ids := slices.Clone(businessIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	results := make(map[int64]SeedResult, len(ids))
	var mu sync.Mutex
	var wg sync.WaitGroup

	sem := make(chan struct{}, workers)

	for _, businessID := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				mu.Lock()
				results[id] = SeedResult{Err: ctx.Err()}
				mu.Unlock()
				return
			}

			n, err := s.SeedDefaultCategories(ctx, id)

			mu.Lock()
			results[id] = SeedResult{Created: n, Err: err}
			mu.Unlock()
		}(businessID)
	}

	wg.Wait()
	return results
}
