package services

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/storage"
	"fintrack/internal/uuid"
)

// maxAmountLength is the width of the stored amount column.
const maxAmountLength = 64

// transactionService handles transaction-related business logic.
type transactionService struct {
	gw storage.Gateway
	mu *sync.Mutex
}

// NewTransactionService creates a new TransactionServicer. mu serialises
// writes to the transaction list and may be shared with other services.
func NewTransactionService(gw storage.Gateway, mu *sync.Mutex) TransactionServicer {
	return &transactionService{gw: gw, mu: lockOrNew(mu)}
}

// CreateTransaction validates the input and appends a new transaction.
func (s *transactionService) CreateTransaction(ctx context.Context, in TransactionInput) (*models.Transaction, error) {
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}

	tx := models.Transaction{
		Base:        models.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Kind:        in.Kind,
		Amount:      in.Amount,
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		Date:        date,
	}
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.gw.LoadTransactions(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	if err := s.gw.SaveTransactions(ctx, append(txs, tx)); err != nil {
		return nil, storageError(err)
	}

	return &tx, nil
}

// UpdateTransaction applies the set fields of upd and bumps UpdatedAt.
func (s *transactionService) UpdateTransaction(ctx context.Context, id string, upd TransactionUpdate) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.gw.LoadTransactions(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	idx := indexOfTransaction(txs, id)
	if idx < 0 {
		return nil, apperrors.ErrTransactionNotFound
	}

	tx := txs[idx]
	if upd.Kind != nil {
		tx.Kind = *upd.Kind
	}
	if upd.Amount != nil {
		tx.Amount = *upd.Amount
	}
	if upd.Category != nil {
		tx.Category = strings.TrimSpace(*upd.Category)
	}
	if upd.Description != nil {
		tx.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Date != nil {
		tx.Date = *upd.Date
	}
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}
	tx.UpdatedAt = time.Now()

	txs[idx] = tx
	if err := s.gw.SaveTransactions(ctx, txs); err != nil {
		return nil, storageError(err)
	}

	return &tx, nil
}

// DeleteTransaction removes a transaction by ID.
func (s *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.gw.LoadTransactions(ctx)
	if err != nil {
		return storageError(err)
	}

	idx := indexOfTransaction(txs, id)
	if idx < 0 {
		return apperrors.ErrTransactionNotFound
	}

	if err := s.gw.SaveTransactions(ctx, slices.Delete(txs, idx, idx+1)); err != nil {
		return storageError(err)
	}
	return nil
}

// GetTransactionByID retrieves a transaction by ID.
func (s *transactionService) GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	txs, err := s.gw.LoadTransactions(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	idx := indexOfTransaction(txs, id)
	if idx < 0 {
		return nil, apperrors.ErrTransactionNotFound
	}
	return &txs[idx], nil
}

// ListTransactions returns one page of the filtered transactions, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	txs, err := s.ListAllTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := pagination.Slice(txs, page)
	return &result, nil
}

// ListAllTransactions returns every transaction matching filter, newest first.
func (s *transactionService) ListAllTransactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error) {
	txs, err := s.gw.LoadTransactions(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	out := filterTransactions(txs, filter)
	slices.SortStableFunc(out, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return out, nil
}

func validateTransaction(tx models.Transaction) error {
	if !tx.Kind.Valid() {
		return apperrors.ErrInvalidTransactionKind
	}
	if !tx.Amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if len(tx.Amount.String()) > maxAmountLength {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount has too many digits")
	}
	if tx.Category == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if tx.Description == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if tx.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	return nil
}

func indexOfTransaction(txs []models.Transaction, id string) int {
	return slices.IndexFunc(txs, func(t models.Transaction) bool { return t.ID == id })
}

// filterTransactions keeps matching transactions in stored order.
func filterTransactions(txs []models.Transaction, filter TransactionFilter) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if filter.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
