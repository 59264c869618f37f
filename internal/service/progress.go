package service

import (
	"sort"
	"sync"

	"wortschatz/internal/repository"
	"wortschatz/internal/vocab"

	"go.uber.org/zap"
)

// ProgressService tracks which words each user has learned. The in-memory
// set is the source of truth; every mutation is written through to the
// repository as a whole list. In-memory state updates first, so a failed
// write never rolls back what the user just did.
type ProgressService struct {
	repo   repository.ProgressRepository
	logger *zap.Logger

	mu      sync.RWMutex
	learned map[int64]map[string]struct{}
}

// NewProgressService creates a new progress service
func NewProgressService(repo repository.ProgressRepository, logger *zap.Logger) *ProgressService {
	return &ProgressService{
		repo:    repo,
		logger:  logger,
		learned: make(map[int64]map[string]struct{}),
	}
}

// ensure returns the user's learned set, loading it from the repository on
// first access. Callers must hold s.mu.
func (s *ProgressService) ensure(userID int64) (map[string]struct{}, error) {
	if set, ok := s.learned[userID]; ok {
		return set, nil
	}

	ids, err := s.repo.GetLearnedIDs(userID)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	s.learned[userID] = set
	return set, nil
}

// persist writes the user's whole learned set back to the repository.
// Callers must hold s.mu.
func (s *ProgressService) persist(userID int64, set map[string]struct{}) error {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if err := s.repo.SaveLearnedIDs(userID, ids); err != nil {
		s.logger.Error("Failed to persist learned ids",
			zap.Int64("user_id", userID),
			zap.Int("count", len(ids)),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// MarkLearned adds a word id to the user's learned set. Idempotent.
func (s *ProgressService) MarkLearned(userID int64, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.ensure(userID)
	if err != nil {
		return err
	}
	set[id] = struct{}{}
	return s.persist(userID, set)
}

// MarkUnlearned removes a word id from the user's learned set. Idempotent.
func (s *ProgressService) MarkUnlearned(userID int64, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.ensure(userID)
	if err != nil {
		return err
	}
	delete(set, id)
	return s.persist(userID, set)
}

// ToggleLearned flips the learned state of a word id and returns the new
// state.
func (s *ProgressService) ToggleLearned(userID int64, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.ensure(userID)
	if err != nil {
		return false, err
	}

	_, learned := set[id]
	if learned {
		delete(set, id)
	} else {
		set[id] = struct{}{}
	}
	return !learned, s.persist(userID, set)
}

// ResetAll empties the user's learned set.
func (s *ProgressService) ResetAll(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.ensure(userID); err != nil {
		return err
	}
	set := make(map[string]struct{})
	s.learned[userID] = set
	return s.persist(userID, set)
}

// IsLearned reports whether a word id is in the user's learned set.
func (s *ProgressService) IsLearned(userID int64, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.ensure(userID)
	if err != nil {
		return false, err
	}
	_, ok := set[id]
	return ok, nil
}

// UnlearnedWords filters allWords down to the ones the user has not learned
// yet, preserving input order.
func (s *ProgressService) UnlearnedWords(userID int64, allWords []vocab.Entry) ([]vocab.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.ensure(userID)
	if err != nil {
		return nil, err
	}

	out := make([]vocab.Entry, 0, len(allWords))
	for _, e := range allWords {
		if _, ok := set[e.ID()]; !ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// LearnedCount counts how many of allWords the user has learned. Stale ids
// of words no longer in the vocabulary are ignored.
func (s *ProgressService) LearnedCount(userID int64, allWords []vocab.Entry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.ensure(userID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, e := range allWords {
		if _, ok := set[e.ID()]; ok {
			count++
		}
	}
	return count, nil
}
