package generation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Batch sizes offered by the dashboard.
var allowedBatchSizes = map[int]bool{1: true, 3: true, 5: true, 10: true}

// ValidBatchSize reports whether count is one of the supported batch sizes.
func ValidBatchSize(count int) bool {
	return allowedBatchSizes[count]
}

// GenerateBatch issues count independent generation calls for the same
// request and waits for all of them. The batch is all-or-nothing: if any
// call fails, the whole batch fails with the first error and no partial
// results are returned. Each call writes its own result slot, so on success
// results[i] is the i-th candidate.
func (s *Service) GenerateBatch(ctx context.Context, req Request, count int) ([]Candidate, error) {
	if !ValidBatchSize(count) {
		return nil, fmt.Errorf("unsupported batch size %d (want 1, 3, 5 or 10)", count)
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	results := make([]Candidate, count)
	g, gCtx := errgroup.WithContext(ctx)

	for i := 0; i < count; i++ {
		g.Go(func() error {
			candidate, err := s.Generate(gCtx, req)
			if err != nil {
				return err
			}
			results[i] = candidate
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
