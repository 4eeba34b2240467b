package booking

import (
	"math"
	"sync"
)

// keyedLocks serializes rating recomputation per worker id so two
// concurrent rating patches cannot interleave their read-compute-write
// sequences and drop a just-written rating from the average.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedLocks) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	l, exists := k.locks[key]
	if !exists {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	return l
}

// RecomputeWorkerRating recalculates the worker's average from every one
// of their rated bookings and writes it back unconditionally. This is a
// full recomputation from source truth, not an incremental update, so it
// is idempotent for a fixed rating set and immune to drift.
func (s *DefaultBookingService) RecomputeWorkerRating(workerID string) (float64, error) {
	l := s.ratingLocks.get(workerID)
	l.Lock()
	defer l.Unlock()

	rated, err := s.Repo.GetRatedByWorker(workerID)
	if err != nil {
		return 0, err
	}

	average := 0.0
	if len(rated) > 0 {
		sum := 0
		for _, b := range rated {
			if b.Rating != nil {
				sum += *b.Rating
			}
		}
		average = float64(sum) / float64(len(rated))
	}

	// Round to one decimal; never persist a non-finite value.
	average = math.Round(average*10) / 10
	if math.IsNaN(average) || math.IsInf(average, 0) {
		average = 0
	}

	if err := s.Workers.SetAverageRating(workerID, average); err != nil {
		return 0, err
	}
	return average, nil
}
