package services

import (
	"context"
	"sync"
	"time"

	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/sampledata"
	"fintrack/internal/storage"
)

type sampleDataService struct {
	gw storage.Gateway
	mu *sync.Mutex
}

// NewSampleDataService creates a new SampleDataServicer.
func NewSampleDataService(gw storage.Gateway, mu *sync.Mutex) SampleDataServicer {
	return &sampleDataService{gw: gw, mu: lockOrNew(mu)}
}

// GetSampleDataStatus reports the demo flag and stats of the stored list.
func (s *sampleDataService) GetSampleDataStatus(ctx context.Context) (*SampleDataStatus, error) {
	enabled, err := s.gw.LoadSampleMode(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	txs, err := s.gw.LoadTransactions(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return &SampleDataStatus{Enabled: enabled, Stats: sampledata.Summarize(txs)}, nil
}

// SetSampleMode switches demo mode. Enabling replaces the transactions with
// a freshly generated set; disabling empties the list.
func (s *sampleDataService) SetSampleMode(ctx context.Context, enabled bool) (*SampleDataStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.gw.SaveSampleMode(ctx, enabled); err != nil {
		return nil, storageError(err)
	}

	var txs []models.Transaction
	if enabled {
		txs = sampledata.Generate(time.Now(), nil)
	}
	if err := s.gw.SaveTransactions(ctx, txs); err != nil {
		return nil, storageError(err)
	}

	stats := sampledata.Summarize(txs)
	logger.Get().Infow("Sample mode changed", "enabled", enabled, "transactions", stats.Transactions)
	return &SampleDataStatus{Enabled: enabled, Stats: stats}, nil
}

// EnsureSampleData generates demo transactions when demo mode is on but the
// list is empty.
func (s *sampleDataService) EnsureSampleData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	enabled, err := s.gw.LoadSampleMode(ctx)
	if err != nil {
		return storageError(err)
	}
	if !enabled {
		return nil
	}

	txs, err := s.gw.LoadTransactions(ctx)
	if err != nil {
		return storageError(err)
	}
	if len(txs) > 0 {
		return nil
	}

	txs = sampledata.Generate(time.Now(), nil)
	if err := s.gw.SaveTransactions(ctx, txs); err != nil {
		return storageError(err)
	}
	logger.Get().Infow("Generated sample transactions", "transactions", len(txs))
	return nil
}
