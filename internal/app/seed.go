package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_records/internal/domain"
)

// SeedResult counts the outcome of a CreateMany run.
type SeedResult struct {
	Created int
	Failed  int
}

// CreateMany creates every input with at most workers creates in flight.
// A failed create is logged and counted; it does not stop the run.
func (s *HotelService) CreateMany(ctx context.Context, inputs []domain.HotelInput, workers int) (SeedResult, error) {
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var (
		wg              sync.WaitGroup
		created, failed atomic.Int64
	)

	for i, in := range inputs {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return SeedResult{Created: int(created.Load()), Failed: int(failed.Load())}, err
		}
		wg.Add(1)
		go func(idx int, in domain.HotelInput) {
			defer wg.Done()
			defer sem.Release(1)

			h, err := s.Create(ctx, in)
			if err != nil {
				failed.Add(1)
				log.Warn().Int("index", idx).Str("title", in.Title).Err(err).Msg("seed create failed")
				return
			}
			created.Add(1)
			log.Debug().Str("hotel_id", h.ID).Msg("seed create ok")
		}(i, in)
	}

	wg.Wait()
	return SeedResult{Created: int(created.Load()), Failed: int(failed.Load())}, nil
}
