package services

import (
	"sync"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/storage"
)

// Options tunes the service set.
type Options struct {
	// Location is the zone calendar months are computed in. Nil means Local.
	Location *time.Location
	// ComparisonMonths is the default window of the monthly comparison.
	ComparisonMonths int
}

// Services bundles every service over one gateway. They share a single
// mutex so that load-modify-save cycles never interleave.
type Services struct {
	Transactions TransactionServicer
	Categories   CategoryServicer
	Settings     SettingsServicer
	Profile      ProfileServicer
	SampleData   SampleDataServicer
	Summary      SummaryServicer
	Data         DataServicer
}

// New wires the full service set over gw.
func New(gw storage.Gateway, opts Options) *Services {
	mu := &sync.Mutex{}
	return &Services{
		Transactions: NewTransactionService(gw, mu),
		Categories:   NewCategoryService(gw, mu),
		Settings:     NewSettingsService(gw, mu),
		Profile:      NewProfileService(gw),
		SampleData:   NewSampleDataService(gw, mu),
		Summary:      NewSummaryService(gw, opts.Location, opts.ComparisonMonths),
		Data:         NewDataService(gw, mu),
	}
}

func lockOrNew(mu *sync.Mutex) *sync.Mutex {
	if mu == nil {
		return &sync.Mutex{}
	}
	return mu
}

func storageError(err error) error {
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
