package services

import (
	"context"
	"sync"

	"fintrack/internal/logger"
	"fintrack/internal/storage"
)

type dataService struct {
	gw storage.Gateway
	mu *sync.Mutex
}

// NewDataService creates a new DataServicer.
func NewDataService(gw storage.Gateway, mu *sync.Mutex) DataServicer {
	return &dataService{gw: gw, mu: lockOrNew(mu)}
}

// ClearAllData removes transactions, categories and settings and turns demo
// mode off. The onboarding profile is kept.
func (s *dataService) ClearAllData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.gw.Clear(ctx); err != nil {
		return storageError(err)
	}
	if err := s.gw.SaveSampleMode(ctx, false); err != nil {
		return storageError(err)
	}

	logger.Get().Info("All stored data cleared")
	return nil
}
