package application

import (
	"sync"

	"github.com/rocketscienceinc/rps-backend/internal/rps"
)

// lockedSource lets many sessions share one random source.
type lockedSource struct {
	mu     sync.Mutex
	source rps.Source
}

func newLockedSource(source rps.Source) *lockedSource {
	return &lockedSource{source: source}
}

func (that *lockedSource) IntN(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.source.IntN(n)
}
