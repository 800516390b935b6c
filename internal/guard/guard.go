// Package guard implements the PIN attempt limiter that gates destructive
// actions. State is persisted per action key, so a lockout survives a
// restart the same way the console survives a page reload.
package guard

import (
	"errors"
	"time"

	"dermasilk/config"
	"dermasilk/internal/models"
	"dermasilk/internal/repository"

	"github.com/rs/zerolog/log"
)

var ErrBlocked = errors.New("guard blocked")

// Status reports the guard state for one action after a submission or a
// status query.
type Status struct {
	Blocked          bool `json:"blocked"`
	AttemptsUsed     int  `json:"attempts_used"`
	AttemptsLeft     int  `json:"attempts_left"`
	RemainingSeconds int  `json:"remaining_seconds"`
}

type Guard struct {
	repo          *repository.GuardRepository
	pin           string
	maxAttempts   int
	blockDuration time.Duration
	now           func() time.Time
	stop          chan struct{}
}

func New(repo *repository.GuardRepository, cfg *config.GuardConfig) *Guard {
	return &Guard{
		repo:          repo,
		pin:           cfg.PIN,
		maxAttempts:   cfg.MaxAttempts,
		blockDuration: cfg.BlockDuration,
		now:           time.Now,
		stop:          make(chan struct{}),
	}
}

// Submit checks a PIN for one guarded action. It returns (true, status)
// when the PIN is accepted, and (false, status) for a wrong PIN. While a
// block is active every submission is rejected with ErrBlocked, correct
// PIN or not.
func (g *Guard) Submit(action, pin string) (bool, *Status, error) {
	s, err := g.load(action)
	if err != nil {
		return false, nil, err
	}
	if g.blocked(s) {
		return false, g.status(s), ErrBlocked
	}

	if pin == g.pin {
		s.Attempts = 0
		s.BlockedUntil = nil
		if err := g.repo.Save(s); err != nil {
			return false, nil, err
		}
		return true, g.status(s), nil
	}

	s.Attempts++
	if s.Attempts >= g.maxAttempts {
		until := g.now().Add(g.blockDuration)
		s.BlockedUntil = &until
		log.Warn().Str("action", action).Time("until", until).Msg("guard locked out")
	}
	if err := g.repo.Save(s); err != nil {
		return false, nil, err
	}
	return false, g.status(s), nil
}

// Status reports the current state without consuming an attempt.
func (g *Guard) Status(action string) (*Status, error) {
	s, err := g.load(action)
	if err != nil {
		return nil, err
	}
	return g.status(s), nil
}

// load fetches state and applies natural expiry: a deadline in the past
// resets attempts to zero.
func (g *Guard) load(action string) (*models.GuardState, error) {
	s, err := g.repo.GetOrCreate(action)
	if err != nil {
		return nil, err
	}
	if s.BlockedUntil != nil && !g.now().Before(*s.BlockedUntil) {
		s.Attempts = 0
		s.BlockedUntil = nil
		if err := g.repo.Save(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (g *Guard) blocked(s *models.GuardState) bool {
	return s.BlockedUntil != nil && g.now().Before(*s.BlockedUntil)
}

func (g *Guard) status(s *models.GuardState) *Status {
	st := &Status{
		AttemptsUsed: s.Attempts,
		AttemptsLeft: g.maxAttempts - s.Attempts,
	}
	if st.AttemptsLeft < 0 {
		st.AttemptsLeft = 0
	}
	if g.blocked(s) {
		st.Blocked = true
		if rem := s.BlockedUntil.Sub(g.now()); rem > 0 {
			st.RemainingSeconds = int((rem + time.Second - 1) / time.Second)
		}
	}
	return st
}

// StartJanitor runs a coarse periodic re-check against stored deadlines,
// resetting expired blocks roughly once per second.
func (g *Guard) StartJanitor(interval time.Duration) {
	go func() {
		tick := time.NewTicker(interval)
		defer tick.Stop()
		for {
			select {
			case <-tick.C:
				expired, err := g.repo.ListExpired(g.now())
				if err != nil {
					continue
				}
				for i := range expired {
					expired[i].Attempts = 0
					expired[i].BlockedUntil = nil
					_ = g.repo.Save(&expired[i])
				}
			case <-g.stop:
				return
			}
		}
	}()
}

func (g *Guard) StopJanitor() {
	close(g.stop)
}
