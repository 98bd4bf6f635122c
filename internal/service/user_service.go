package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ControleGastos/internal/cache"
	dom "ControleGastos/internal/domain"
	"ControleGastos/internal/repo"

	"golang.org/x/sync/singleflight"
)

// UserService handles registration, profile updates and balance summaries.
type UserService struct {
	users repo.UserRepo
	txs   repo.TransactionRepo
	cache *cache.SummaryCache
	sf    singleflight.Group
	log   *slog.Logger

	newIdentifier func() (string, error)
}

// NewUserService creates a UserService. If c is nil, caching is disabled.
func NewUserService(users repo.UserRepo, txs repo.TransactionRepo, c *cache.SummaryCache, log *slog.Logger) *UserService {
	if log == nil {
		log = slog.Default()
	}
	return &UserService{
		users:         users,
		txs:           txs,
		cache:         c,
		log:           log,
		newIdentifier: randomIdentifier,
	}
}

// Create registers a user under a freshly generated identifier.
func (s *UserService) Create(ctx context.Context, name string, age int, email string) (dom.UserSummary, error) {
	name, err := normalizeName(name)
	if err != nil {
		return dom.UserSummary{}, err
	}
	if err := checkAge(age); err != nil {
		return dom.UserSummary{}, err
	}
	email, err = normalizeEmail(email)
	if err != nil {
		return dom.UserSummary{}, err
	}

	taken, err := s.users.EmailExists(ctx, email, 0)
	if err != nil {
		return dom.UserSummary{}, err
	}
	if taken {
		return dom.UserSummary{}, ErrEmailTaken
	}

	for attempt := 1; attempt <= maxIdentifierAttempts; attempt++ {
		identifier, err := s.newIdentifier()
		if err != nil {
			return dom.UserSummary{}, err
		}
		exists, err := s.users.IdentifierExists(ctx, identifier)
		if err != nil {
			return dom.UserSummary{}, err
		}
		if exists {
			s.log.Debug("identifier collision", "attempt", attempt)
			continue
		}

		u, err := s.users.Create(ctx, dom.User{Identifier: identifier, Name: name, Age: age, Email: email})
		switch {
		case errors.Is(err, repo.ErrDuplicateIdentifier):
			s.log.Debug("identifier collision on insert", "attempt", attempt)
			continue
		case errors.Is(err, repo.ErrDuplicateEmail):
			return dom.UserSummary{}, ErrEmailTaken
		case err != nil:
			return dom.UserSummary{}, err
		}

		s.log.Info("user created", "identifier", u.Identifier, "minor", u.IsMinor())
		s.invalidateCache(ctx)
		return dom.UserSummary{User: u}, nil
	}
	return dom.UserSummary{}, ErrIdentifierExhausted
}

// List returns every user with its totals.
func (s *UserService) List(ctx context.Context) ([]dom.UserSummary, error) {
	if gen, ok := s.cacheGeneration(ctx); ok {
		v, err, _ := s.sf.Do(fmt.Sprintf("users:%d", gen), func() (interface{}, error) {
			if list, err := s.cache.GetUsers(ctx, gen); err == nil && list != nil {
				return list, nil
			}
			list, err := s.users.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetUsers(ctx, gen, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.UserSummary), nil
	}
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, identifier string) (dom.UserSummary, error) {
	u, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dom.UserSummary{}, ErrNotFound
		}
		return dom.UserSummary{}, err
	}
	return u, nil
}

// Update changes name and email. Age and identifier are fixed at registration.
func (s *UserService) Update(ctx context.Context, identifier, name, email string) (dom.UserSummary, error) {
	name, err := normalizeName(name)
	if err != nil {
		return dom.UserSummary{}, err
	}
	email, err = normalizeEmail(email)
	if err != nil {
		return dom.UserSummary{}, err
	}

	existing, err := s.Get(ctx, identifier)
	if err != nil {
		return dom.UserSummary{}, err
	}
	taken, err := s.users.EmailExists(ctx, email, existing.ID)
	if err != nil {
		return dom.UserSummary{}, err
	}
	if taken {
		return dom.UserSummary{}, ErrEmailTaken
	}

	patch := existing.User
	patch.Name = name
	patch.Email = email
	u, err := s.users.Update(ctx, patch)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return dom.UserSummary{}, ErrNotFound
		case errors.Is(err, repo.ErrDuplicateEmail):
			return dom.UserSummary{}, ErrEmailTaken
		}
		return dom.UserSummary{}, err
	}
	s.invalidateCache(ctx)

	existing.User = u
	return existing, nil
}

// Delete removes the user and all of its transactions.
func (s *UserService) Delete(ctx context.Context, identifier string) error {
	u, err := s.Get(ctx, identifier)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, u.ID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.log.Info("user deleted", "identifier", identifier)
	s.invalidateCache(ctx)
	return nil
}

// Totals returns income, expense and counts across all users.
func (s *UserService) Totals(ctx context.Context) (dom.Totals, error) {
	if gen, ok := s.cacheGeneration(ctx); ok {
		v, err, _ := s.sf.Do(fmt.Sprintf("totals:%d", gen), func() (interface{}, error) {
			if t, ok, err := s.cache.GetTotals(ctx, gen); err == nil && ok {
				return t, nil
			}
			t, err := s.txs.Totals(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetTotals(ctx, gen, t)
			return t, nil
		})
		if err != nil {
			return dom.Totals{}, err
		}
		return v.(dom.Totals), nil
	}
	return s.txs.Totals(ctx)
}

// cacheGeneration reports false when caching is off or Redis is unreachable;
// callers then read the database directly.
func (s *UserService) cacheGeneration(ctx context.Context) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}
	gen, err := s.cache.Generation(ctx)
	if err != nil {
		s.log.Warn("cache generation unavailable", "error", err)
		return 0, false
	}
	return gen, true
}

func (s *UserService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		if err := s.cache.InvalidateAll(ctx); err != nil {
			s.log.Warn("cache invalidation failed", "error", err)
		}
	}
}
