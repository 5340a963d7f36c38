// Package memory provides an in-memory Repository implementation used by
// tests and local experiments.
package memory

import (
	"context"
	"sync"

	"github.com/jonathan/quote-insights/internal/repository"
)

// Store is an in-memory repository. Safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	rows      []repository.TrainingRow
	histories []repository.CustomerHistory
}

// NewStore creates an empty in-memory repository.
func NewStore() *Store {
	return &Store{}
}

// AddTrainingRows appends historical line rows.
func (s *Store) AddTrainingRows(rows ...repository.TrainingRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, rows...)
}

// AddCustomerHistories appends customer histories.
func (s *Store) AddCustomerHistories(histories ...repository.CustomerHistory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.histories = append(s.histories, histories...)
}

// TrainingRows returns a copy of the stored training rows.
func (s *Store) TrainingRows(_ context.Context) ([]repository.TrainingRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]repository.TrainingRow, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

// CustomerHistories returns a copy of the stored customer histories.
func (s *Store) CustomerHistories(_ context.Context) ([]repository.CustomerHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]repository.CustomerHistory, len(s.histories))
	copy(out, s.histories)
	return out, nil
}
