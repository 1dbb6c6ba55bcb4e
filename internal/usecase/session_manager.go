package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/rps-backend/internal/apperror"
	"github.com/rocketscienceinc/rps-backend/internal/entity"
	"github.com/rocketscienceinc/rps-backend/internal/pkg"
	"github.com/rocketscienceinc/rps-backend/internal/rps"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameEngine interface {
	PlayRound(state entity.MatchState, userMove entity.Move) (entity.MatchState, entity.RoundOutcome, error)
}

type MatchSettings struct {
	DefaultTargetScore int
	MaxTargetScore     int
}

// SessionManager owns the load-play-save cycle for each session's match.
type SessionManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	engine      gameEngine
	settings    MatchSettings

	locks *sessionLocks
	now   func() time.Time
}

func NewSessionManager(logger *slog.Logger, sessionRepo sessionRepo, engine gameEngine, settings MatchSettings) *SessionManager {
	if settings.DefaultTargetScore <= 0 {
		settings.DefaultTargetScore = entity.DefaultTargetScore
	}

	return &SessionManager{
		logger: logger.With("component", "session_manager"),

		sessionRepo: sessionRepo,
		engine:      engine,
		settings:    settings,

		locks: newSessionLocks(),
		now:   time.Now,
	}
}

// GetOrCreateSession - returns the session for id, starting a new one when id is empty or unknown.
// An unknown but well-formed id is kept so a client cookie stays valid after the session expired.
func (that *SessionManager) GetOrCreateSession(ctx context.Context, id string) (*entity.Session, error) {
	if id == "" {
		return that.createSession(ctx, pkg.GenerateSessionID())
	}

	unlock := that.locks.lock(id)
	defer unlock()

	session, err := that.sessionRepo.GetByID(ctx, id)
	if err == nil {
		return session, nil
	}

	if !errors.Is(err, apperror.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	if !pkg.IsSessionID(id) {
		id = pkg.GenerateSessionID()
	}

	return that.createSession(ctx, id)
}

func (that *SessionManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// PlayRound - plays the user's move in the session's match.
func (that *SessionManager) PlayRound(ctx context.Context, id string, move entity.Move) (*entity.Session, entity.RoundOutcome, error) {
	log := that.logger.With("method", "PlayRound", "session", id)

	var outcome entity.RoundOutcome

	session, err := that.update(ctx, id, func(state entity.MatchState) (entity.MatchState, error) {
		next, roundOutcome, err := that.engine.PlayRound(state, move)
		if err != nil {
			return state, fmt.Errorf("failed to play round: %w", err)
		}

		outcome = roundOutcome

		return next, nil
	})
	if err != nil {
		return nil, "", err
	}

	log.Debug("round played",
		"round", session.Match.Rounds(),
		"outcome", outcome,
		"user_score", session.Match.UserScore,
		"computer_score", session.Match.ComputerScore)

	if session.Match.MatchOver {
		log.Info("match finished", "winner", session.Match.Winner(), "rounds", session.Match.Rounds())
	}

	return session, outcome, nil
}

func (that *SessionManager) NextRound(ctx context.Context, id string) (*entity.Session, error) {
	return that.update(ctx, id, func(state entity.MatchState) (entity.MatchState, error) {
		return rps.NextRound(state), nil
	})
}

// ResetMatch - starts the session's match over. A nil targetScore keeps the current one.
func (that *SessionManager) ResetMatch(ctx context.Context, id string, targetScore *int) (*entity.Session, error) {
	if err := that.validateTargetScore(targetScore); err != nil {
		return nil, err
	}

	session, err := that.update(ctx, id, func(state entity.MatchState) (entity.MatchState, error) {
		next, err := rps.ResetMatch(state, targetScore)
		if err != nil {
			return state, fmt.Errorf("failed to reset match: %w", err)
		}

		return next, nil
	})
	if err != nil {
		return nil, err
	}

	that.logger.Info("match reset", "session", id, "target_score", session.Match.TargetScore)

	return session, nil
}

func (that *SessionManager) EndSession(ctx context.Context, id string) error {
	unlock := that.locks.lock(id)
	defer unlock()

	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// update - runs one state transition under the session lock and saves the result.
func (that *SessionManager) update(
	ctx context.Context,
	id string,
	transition func(entity.MatchState) (entity.MatchState, error),
) (*entity.Session, error) {
	unlock := that.locks.lock(id)
	defer unlock()

	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	next, err := transition(session.Match)
	if err != nil {
		return nil, err
	}

	session.Match = next
	session.UpdatedAt = that.now()

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

func (that *SessionManager) createSession(ctx context.Context, id string) (*entity.Session, error) {
	match, err := rps.NewMatch(that.settings.DefaultTargetScore)
	if err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}

	now := that.now()
	session := &entity.Session{
		ID:        id,
		Match:     match,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session created", "session", id, "target_score", match.TargetScore)

	return session, nil
}

func (that *SessionManager) validateTargetScore(targetScore *int) error {
	if targetScore == nil || that.settings.MaxTargetScore <= 0 {
		return nil
	}

	if *targetScore > that.settings.MaxTargetScore {
		return fmt.Errorf("%w: %d is above the limit of %d",
			apperror.ErrInvalidTargetScore, *targetScore, that.settings.MaxTargetScore)
	}

	return nil
}
