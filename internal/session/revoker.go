// Package session tracks revoked session tokens so logout takes effect
// server-side before the token's own expiry.
package session

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Revoker records revoked token IDs until they expire.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const defaultJanitorInterval = 10 * time.Minute

// MemoryRevoker keeps revocations in process memory.
type MemoryRevoker struct {
	mu       sync.Mutex
	entries  map[string]time.Time
	interval time.Duration
	now      func() time.Time
}

// NewMemoryRevoker constructs an empty MemoryRevoker.
func NewMemoryRevoker() *MemoryRevoker {
	return &MemoryRevoker{
		entries:  make(map[string]time.Time),
		interval: defaultJanitorInterval,
		now:      time.Now,
	}
}

// Revoke marks tokenID revoked until expiresAt.
func (r *MemoryRevoker) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return nil
	}
	r.mu.Lock()
	r.entries[tokenID] = expiresAt
	r.mu.Unlock()
	return nil
}

// IsRevoked reports whether tokenID was revoked and has not yet expired.
func (r *MemoryRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	expiresAt, ok := r.entries[tokenID]
	if !ok {
		return false, nil
	}
	if !r.now().Before(expiresAt) {
		delete(r.entries, tokenID)
		return false, nil
	}
	return true, nil
}

// Start launches the expiry sweep loop in a background goroutine.
func (r *MemoryRevoker) Start(ctx context.Context) {
	if r == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	go r.run(ctx)
	log.Infof("session revoker janitor started (interval=%s)", r.interval)
}

func (r *MemoryRevoker) run(ctx context.Context) {
	for {
		timer := time.NewTimer(r.interval)
		select {
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C
			}
			return
		case <-timer.C:
		}
		if removed := r.sweep(); removed > 0 {
			log.Debugf("session revoker swept %d expired entries", removed)
		}
	}
}

// sweep drops expired revocations and returns how many were removed.
func (r *MemoryRevoker) sweep() int {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, expiresAt := range r.entries {
		if !now.Before(expiresAt) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}
