package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rocketscienceinc/rps-backend/internal/apperror"
	"github.com/rocketscienceinc/rps-backend/internal/entity"
)

type memSession struct {
	mu       sync.Mutex
	sessions map[string]entity.Session
	ttl      time.Duration
	now      func() time.Time

	lastSweep time.Time
}

// NewMemorySessionRepository - keeps sessions in process memory; they are gone after a restart.
// Sessions idle for longer than ttl are dropped on read, and writes sweep out the rest at most
// once per ttl. A zero ttl never expires them.
func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return &memSession{
		sessions: make(map[string]entity.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (that *memSession) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	now := that.now()
	stored := cloneSession(*session)
	stored.UpdatedAt = now

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.ttl > 0 && now.Sub(that.lastSweep) >= that.ttl {
		that.sweep()
		that.lastSweep = now
	}

	that.sessions[session.ID] = stored

	return nil
}

// sweep - drops every expired session. Caller holds mu.
func (that *memSession) sweep() {
	for id, session := range that.sessions {
		if that.expired(session) {
			delete(that.sessions, id)
		}
	}
}

func (that *memSession) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, ok := that.sessions[id]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	if that.expired(session) {
		delete(that.sessions, id)

		return nil, apperror.ErrSessionNotFound
	}

	found := cloneSession(session)
	return &found, nil
}

func (that *memSession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.sessions, id)

	return nil
}

func (that *memSession) expired(session entity.Session) bool {
	return that.ttl > 0 && that.now().Sub(session.UpdatedAt) > that.ttl
}

// cloneSession copies the parts of a session that would otherwise be shared with the caller.
func cloneSession(session entity.Session) entity.Session {
	session.Match.History = slices.Clone(session.Match.History)
	if session.Match.History == nil {
		session.Match.History = []entity.RoundRecord{}
	}

	if session.Match.LastRound != nil {
		lastRound := *session.Match.LastRound
		session.Match.LastRound = &lastRound
	}

	return session
}
