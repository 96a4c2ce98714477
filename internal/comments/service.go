package comments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var ErrEmptyQuoteID = errors.New("quote id required")

// Service reads and upserts single comments on top of a whole-mapping Store.
// Saves are read-modify-write of the entire mapping; the mutex keeps
// concurrent saves in this process from dropping each other.
type Service struct {
	store  Store
	logger *zap.Logger
	mu     sync.Mutex
}

func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// Get returns the stored comment for quoteID, or "" when there is none.
func (s *Service) Get(ctx context.Context, quoteID string) (string, error) {
	quoteID = normalizeID(quoteID)
	if quoteID == "" {
		return "", ErrEmptyQuoteID
	}

	all, err := s.store.GetAll(ctx)
	if err != nil {
		return "", err
	}
	return all[quoteID], nil
}

// All returns a copy of the full mapping.
func (s *Service) All(ctx context.Context) (map[string]string, error) {
	return s.store.GetAll(ctx)
}

// Save upserts the comment for quoteID and rewrites the mapping. Text is
// stored exactly as given; an empty text removes the entry.
// It returns the text as stored.
func (s *Service) Save(ctx context.Context, quoteID, text string) (string, error) {
	quoteID = normalizeID(quoteID)
	if quoteID == "" {
		return "", ErrEmptyQuoteID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.store.GetAll(ctx)
	if err != nil {
		return "", err
	}
	if text == "" {
		delete(all, quoteID)
	} else {
		all[quoteID] = text
	}
	if err := s.store.SetAll(ctx, all); err != nil {
		return "", err
	}

	s.logger.Debug("comment saved", zap.String("quote_id", quoteID), zap.Int("len", len(text)))
	return text, nil
}

// Merge upserts many comments in one rewrite. Empty ids are rejected before
// anything is written; empty texts are skipped.
func (s *Service) Merge(ctx context.Context, entries map[string]string) (int, error) {
	for id := range entries {
		if normalizeID(id) == "" {
			return 0, ErrEmptyQuoteID
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.store.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	n := 0
	for id, text := range entries {
		if text == "" {
			continue
		}
		all[normalizeID(id)] = text
		n++
	}
	if err := s.store.SetAll(ctx, all); err != nil {
		return 0, fmt.Errorf("merge comments: %w", err)
	}
	return n, nil
}

func normalizeID(quoteID string) string {
	return strings.TrimSpace(quoteID)
}
