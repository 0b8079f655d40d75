package selection

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-catalog/internal/errors"
)

// seededRoller is a deterministic dice.Roller for reproducible generation
type seededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRoller returns a roller whose sequence is fixed by seed
func NewSeededRoller(seed uint64) dice.Roller {
	return &seededRoller{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Roll returns a value in 1..size
func (r *seededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("invalid die size: %d", size)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *seededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("invalid die count: %d", count)
	}
	results := make([]int, count)
	for i := range results {
		n, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = n
	}
	return results, nil
}
