package handlers

import (
	"context"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
	"fintrack/internal/summary"
)

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn func(in services.TransactionInput) (*models.Transaction, error)
	updateTransactionFn func(id string, upd services.TransactionUpdate) (*models.Transaction, error)
	deleteTransactionFn func(id string) error
	getTransactionFn    func(id string) (*models.Transaction, error)
	listTransactionsFn  func(filter services.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
}

func (m *mockTransactionService) CreateTransaction(_ context.Context, in services.TransactionInput) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(in)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(_ context.Context, id string, upd services.TransactionUpdate) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(id, upd)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(_ context.Context, id string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(id)
	}
	return nil
}

func (m *mockTransactionService) GetTransactionByID(_ context.Context, id string) (*models.Transaction, error) {
	if m.getTransactionFn != nil {
		return m.getTransactionFn(id)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) ListTransactions(_ context.Context, filter services.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(filter, page)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) ListAllTransactions(_ context.Context, _ services.TransactionFilter) ([]models.Transaction, error) {
	return []models.Transaction{}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

// --- mock summary service ---

type mockSummaryService struct {
	getSummaryFn    func(filter services.TransactionFilter) (*summary.FinancialSummary, error)
	getMonthlyFn    func(year int, month time.Month) (*summary.MonthlyBucket, error)
	getComparisonFn func(months int, reference time.Time) ([]summary.MonthlyComparison, error)
	defaultMonths   int
}

func (m *mockSummaryService) GetSummary(_ context.Context, filter services.TransactionFilter) (*summary.FinancialSummary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn(filter)
	}
	s := summary.ComputeSummary(nil)
	return &s, nil
}

func (m *mockSummaryService) GetMonthlyBucket(_ context.Context, year int, month time.Month) (*summary.MonthlyBucket, error) {
	if m.getMonthlyFn != nil {
		return m.getMonthlyFn(year, month)
	}
	return &summary.MonthlyBucket{}, nil
}

func (m *mockSummaryService) GetMonthlyComparison(_ context.Context, months int, reference time.Time) ([]summary.MonthlyComparison, error) {
	if m.getComparisonFn != nil {
		return m.getComparisonFn(months, reference)
	}
	return nil, nil
}

func (m *mockSummaryService) DefaultComparisonMonths() int {
	if m.defaultMonths == 0 {
		return 6
	}
	return m.defaultMonths
}

var _ services.SummaryServicer = (*mockSummaryService)(nil)

// --- mock category service ---

type mockCategoryService struct {
	listCategoriesFn func(kind *models.Kind) ([]models.Category, error)
	createCategoryFn func(name string, kind models.Kind, color, icon string) (*models.Category, error)
	deleteCategoryFn func(id string) error
}

func (m *mockCategoryService) ListCategories(_ context.Context, kind *models.Kind) ([]models.Category, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(kind)
	}
	return models.DefaultCategories(), nil
}

func (m *mockCategoryService) CreateCategory(_ context.Context, name string, kind models.Kind, color, icon string) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(name, kind, color, icon)
	}
	return &models.Category{Name: name, Kind: kind, Color: color, Icon: icon}, nil
}

func (m *mockCategoryService) DeleteCategory(_ context.Context, id string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(id)
	}
	return nil
}

func (m *mockCategoryService) ResetCategories(_ context.Context) ([]models.Category, error) {
	return models.DefaultCategories(), nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

// --- mock settings service ---

type mockSettingsService struct {
	settings         models.Settings
	updateSettingsFn func(upd services.SettingsUpdate) (*models.Settings, error)
	getErr           error
}

func (m *mockSettingsService) GetSettings(_ context.Context) (*models.Settings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s := m.settings
	if s == (models.Settings{}) {
		s = models.DefaultSettings()
	}
	return &s, nil
}

func (m *mockSettingsService) UpdateSettings(_ context.Context, upd services.SettingsUpdate) (*models.Settings, error) {
	if m.updateSettingsFn != nil {
		return m.updateSettingsFn(upd)
	}
	s := models.DefaultSettings()
	return &s, nil
}

func (m *mockSettingsService) ResetSettings(_ context.Context) (*models.Settings, error) {
	s := models.DefaultSettings()
	return &s, nil
}

var _ services.SettingsServicer = (*mockSettingsService)(nil)

// --- mock profile service ---

type mockProfileService struct {
	getProfileFn         func() (*models.Profile, error)
	completeOnboardingFn func(name string) (*models.Profile, error)
}

func (m *mockProfileService) GetProfile(_ context.Context) (*models.Profile, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn()
	}
	return &models.Profile{}, nil
}

func (m *mockProfileService) CompleteOnboarding(_ context.Context, name string) (*models.Profile, error) {
	if m.completeOnboardingFn != nil {
		return m.completeOnboardingFn(name)
	}
	return &models.Profile{Name: name, HasCompletedOnboarding: true}, nil
}

func (m *mockProfileService) ClearProfile(_ context.Context) error {
	return nil
}

var _ services.ProfileServicer = (*mockProfileService)(nil)

// --- mock sample data and data services ---

type mockSampleDataService struct {
	setSampleModeFn func(enabled bool) (*services.SampleDataStatus, error)
}

func (m *mockSampleDataService) GetSampleDataStatus(_ context.Context) (*services.SampleDataStatus, error) {
	return &services.SampleDataStatus{}, nil
}

func (m *mockSampleDataService) SetSampleMode(_ context.Context, enabled bool) (*services.SampleDataStatus, error) {
	if m.setSampleModeFn != nil {
		return m.setSampleModeFn(enabled)
	}
	return &services.SampleDataStatus{Enabled: enabled}, nil
}

func (m *mockSampleDataService) EnsureSampleData(_ context.Context) error {
	return nil
}

var _ services.SampleDataServicer = (*mockSampleDataService)(nil)

type mockDataService struct {
	clearAllDataFn func() error
}

func (m *mockDataService) ClearAllData(_ context.Context) error {
	if m.clearAllDataFn != nil {
		return m.clearAllDataFn()
	}
	return nil
}

var _ services.DataServicer = (*mockDataService)(nil)
