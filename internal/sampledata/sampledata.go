// Package sampledata fills an empty tracker with believable demo
// transactions drawn from the default categories.
package sampledata

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/uuid"
)

const (
	incomeWindowDays  = 90
	expenseWindowDays = 60
)

// amountRange is [min, min+spread).
type amountRange struct{ min, spread int64 }

var incomeRanges = map[string]amountRange{
	"Salary":     {30000, 50000},
	"Business":   {15000, 25000},
	"Investment": {5000, 15000},
	"Freelance":  {8000, 20000},
}

var expenseRanges = map[string]amountRange{
	"Food & Dining":     {200, 2000},
	"Transportation":    {500, 3000},
	"Shopping":          {1000, 5000},
	"Bills & Utilities": {1500, 4000},
	"Entertainment":     {300, 2500},
	"Healthcare":        {800, 3000},
	"Education":         {2000, 8000},
	"Travel":            {5000, 15000},
	"Home & Garden":     {1000, 6000},
}

var (
	defaultIncomeRange  = amountRange{2000, 10000}
	defaultExpenseRange = amountRange{500, 2000}
)

var descriptions = map[string][]string{
	"Food & Dining":     {"Lunch at McDonald's", "Groceries from BigBasket", "Coffee at Starbucks", "Dinner at local restaurant", "Pizza delivery", "Breakfast at café", "Vegetables from market", "Online food order"},
	"Transportation":    {"Uber ride to office", "Metro card recharge", "Petrol for bike", "Auto rickshaw fare", "Bus ticket", "Ola cab booking", "Parking fees", "Vehicle maintenance"},
	"Shopping":          {"Clothes from Myntra", "Books from Amazon", "Electronics purchase", "Shoes shopping", "Home essentials", "Gift for friend", "Online shopping", "Pharmacy items"},
	"Entertainment":     {"Movie tickets", "Netflix subscription", "Gaming purchase", "Concert tickets", "Spotify premium", "YouTube premium", "Sports event", "Weekend outing"},
	"Bills & Utilities": {"Electricity bill", "Internet bill", "Mobile recharge", "Gas cylinder", "Water bill", "DTH recharge", "Maintenance charges", "Insurance premium"},
	"Healthcare":        {"Doctor consultation", "Medicine purchase", "Health checkup", "Dental treatment", "Gym membership", "Vitamin supplements", "Lab tests", "Physiotherapy"},
	"Education":         {"Course enrollment", "Books purchase", "Online certification", "Tuition fees", "Workshop registration", "Educational software", "Training materials", "Language classes"},
	"Travel":            {"Flight booking", "Hotel stay", "Travel insurance", "Vacation expenses", "Train tickets", "Travel gear", "Foreign exchange", "Tour package"},
	"Home & Garden":     {"Furniture purchase", "Home decoration", "Garden plants", "Cleaning supplies", "Kitchen utensils", "Repair work", "Interior design", "Home security"},
	"Other":             {"Miscellaneous expense", "Cash withdrawal", "Bank charges", "Donation", "Emergency expense", "Unexpected cost", "Service charges", "Other payments"},
	"Salary":            {"Monthly salary credit", "Bonus payment", "Overtime payment", "Performance bonus", "Salary advance", "Variable pay", "Annual increment", "Festival bonus"},
	"Freelance":         {"Web design project", "Content writing", "Consulting work", "Graphic design", "Photography gig", "Online tutoring", "App development", "Digital marketing"},
	"Investment":        {"Dividend received", "Mutual fund returns", "Stock profit", "Fixed deposit maturity", "Gold investment return", "Rental income", "Interest earned", "Capital gains"},
	"Business":          {"Product sales", "Service revenue", "Client payment", "Business profit", "Commission earned", "Partnership income", "Royalty payment", "License fees"},
	"Gift":              {"Birthday gift money", "Wedding gift", "Festival money", "Achievement reward", "Cash gift from family", "Surprise money", "Celebration bonus", "Gift voucher"},
}

// Generate builds a demo data set relative to now. Salary gets three income
// entries and every other income category one to three, dated within the
// last 90 days; every expense category gets three to ten entries within the
// last 60 days. The result is sorted newest first. rng may be nil.
func Generate(now time.Time, rng *rand.Rand) []models.Transaction {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(now.UnixNano()), 0x5eed))
	}

	var out []models.Transaction
	for _, c := range models.DefaultIncomeCategories {
		count := 1 + rng.IntN(3)
		if c.Name == "Salary" {
			count = 3
		}
		for i := 0; i < count; i++ {
			out = append(out, newTransaction(rng, now, c.Name, models.KindIncome, incomeWindowDays))
		}
	}
	for _, c := range models.DefaultExpenseCategories {
		count := 3 + rng.IntN(8)
		for i := 0; i < count; i++ {
			out = append(out, newTransaction(rng, now, c.Name, models.KindExpense, expenseWindowDays))
		}
	}

	slices.SortStableFunc(out, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

func newTransaction(rng *rand.Rand, now time.Time, category string, kind models.Kind, windowDays int) models.Transaction {
	return models.Transaction{
		Base: models.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Kind:        kind,
		Amount:      randomAmount(rng, category, kind),
		Category:    category,
		Description: randomDescription(rng, category),
		Date:        now.AddDate(0, 0, -rng.IntN(windowDays)),
	}
}

func randomAmount(rng *rand.Rand, category string, kind models.Kind) decimal.Decimal {
	var r amountRange
	var ok bool
	if kind == models.KindIncome {
		if r, ok = incomeRanges[category]; !ok {
			r = defaultIncomeRange
		}
	} else {
		if r, ok = expenseRanges[category]; !ok {
			r = defaultExpenseRange
		}
	}
	return decimal.NewFromInt(r.min + rng.Int64N(r.spread))
}

func randomDescription(rng *rand.Rand, category string) string {
	pool, ok := descriptions[category]
	if !ok {
		return "Sample transaction"
	}
	return pool[rng.IntN(len(pool))]
}

// Stats summarises a generated set with whole-unit totals.
type Stats struct {
	Transactions  int   `json:"transactions"`
	TotalIncome   int64 `json:"totalIncome"`
	TotalExpenses int64 `json:"totalExpenses"`
	NetAmount     int64 `json:"netAmount"`
}

// Summarize counts transactions and floors the income, expense and net totals.
func Summarize(transactions []models.Transaction) Stats {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range transactions {
		switch t.Kind {
		case models.KindIncome:
			income = income.Add(t.Amount)
		case models.KindExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return Stats{
		Transactions:  len(transactions),
		TotalIncome:   income.Floor().IntPart(),
		TotalExpenses: expense.Floor().IntPart(),
		NetAmount:     income.Sub(expense).Floor().IntPart(),
	}
}
