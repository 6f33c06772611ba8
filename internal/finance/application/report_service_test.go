package application

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mcardoso/ExpenseTracker/internal/finance/domain"
	"github.com/mcardoso/ExpenseTracker/internal/finance/infrastructure"
)

// Helper function to compare floating-point values
func areEqualRounded(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestGetMonthlyReport_SingleTransaction(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Categories: []domain.Category{
			{ID: 1, UserID: strPtr("user-a"), Name: "Food", Color: "#FF0000"},
		},
		Transactions: []domain.Transaction{
			{ID: 1, UserID: "user-a", CategoryID: 1, Amount: 45.50, Date: day(2024, time.June, 20)},
		},
	}
	service := NewReportService(repo)

	report, err := service.GetMonthlyReport("user-a", 6, 2024)
	assert.NoError(t, err)

	assert.Len(t, report.Categories, 1)
	assert.Equal(t, "Food", report.Categories[0].Name)
	assert.True(t, areEqualRounded(report.Categories[0].Total, 45.50))
	assert.True(t, areEqualRounded(report.Total, 45.50))

	assert.Len(t, report.DailyExpenses, 1)
	assert.Equal(t, 20, report.DailyExpenses[0].Day)
	assert.True(t, areEqualRounded(report.DailyExpenses[0].Total, 45.50))
}

func TestGetMonthlyReport_SameDaySameCategoryAggregates(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Categories: []domain.Category{
			{ID: 1, Name: "Food", Color: "#FF0000", IsDefault: true},
		},
		Transactions: []domain.Transaction{
			{ID: 1, UserID: "user-a", CategoryID: 1, Amount: 10.00, Date: day(2024, time.March, 5)},
			{ID: 2, UserID: "user-a", CategoryID: 1, Amount: 5.00, Date: day(2024, time.March, 5)},
		},
	}
	service := NewReportService(repo)

	report, err := service.GetMonthlyReport("user-a", 3, 2024)
	assert.NoError(t, err)

	assert.Len(t, report.Categories, 1)
	assert.True(t, areEqualRounded(report.Categories[0].Total, 15.00))
	assert.Len(t, report.DailyExpenses, 1)
	assert.Equal(t, 5, report.DailyExpenses[0].Day)
	assert.True(t, areEqualRounded(report.DailyExpenses[0].Total, 15.00))
}

func TestGetMonthlyReport_CategoriesOrderedByTotalDescending(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Categories: []domain.Category{
			{ID: 1, Name: "Food", Color: "#FF0000", IsDefault: true},
			{ID: 2, Name: "Transport", Color: "#00FF00", IsDefault: true},
		},
		Transactions: []domain.Transaction{
			{ID: 1, UserID: "user-a", CategoryID: 1, Amount: 10.00, Date: day(2024, time.March, 5)},
			{ID: 2, UserID: "user-a", CategoryID: 2, Amount: 99.00, Date: day(2024, time.March, 6)},
		},
	}
	service := NewReportService(repo)

	report, err := service.GetMonthlyReport("user-a", 3, 2024)
	assert.NoError(t, err)

	assert.Len(t, report.Categories, 2)
	assert.Equal(t, "Transport", report.Categories[0].Name)
	assert.Equal(t, "Food", report.Categories[1].Name)
}

func TestGetMonthlyReport_SparseSeriesOmitEmptyEntries(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Categories: []domain.Category{
			{ID: 1, Name: "Food", Color: "#FF0000", IsDefault: true},
			{ID: 2, Name: "Transport", Color: "#00FF00", IsDefault: true},
		},
		Transactions: []domain.Transaction{
			{ID: 1, UserID: "user-a", CategoryID: 1, Amount: 10.00, Date: day(2024, time.March, 3)},
			{ID: 2, UserID: "user-a", CategoryID: 1, Amount: 20.00, Date: day(2024, time.March, 28)},
		},
	}
	service := NewReportService(repo)

	report, err := service.GetMonthlyReport("user-a", 3, 2024)
	assert.NoError(t, err)

	// No zero-filled days and no zero-total categories.
	assert.Len(t, report.DailyExpenses, 2)
	assert.Equal(t, 3, report.DailyExpenses[0].Day)
	assert.Equal(t, 28, report.DailyExpenses[1].Day)
	assert.Len(t, report.Categories, 1)
}

func TestGetMonthlyReport_PercentageChange(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Categories: []domain.Category{
			{ID: 1, Name: "Food", Color: "#FF0000", IsDefault: true},
		},
		Transactions: []domain.Transaction{
			{ID: 1, UserID: "user-a", CategoryID: 1, Amount: 100.00, Date: day(2024, time.May, 10)},
			{ID: 2, UserID: "user-a", CategoryID: 1, Amount: 150.00, Date: day(2024, time.June, 10)},
		},
	}
	service := NewReportService(repo)

	report, err := service.GetMonthlyReport("user-a", 6, 2024)
	assert.NoError(t, err)

	assert.True(t, areEqualRounded(report.Comparison.PreviousMonthTotal, 100.00))
	assert.True(t, areEqualRounded(report.Comparison.PercentageChange, 50.00))
}

func TestGetMonthlyReport_ZeroPreviousTotalYieldsZeroChange(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Categories: []domain.Category{
			{ID: 1, Name: "Food", Color: "#FF0000", IsDefault: true},
		},
		Transactions: []domain.Transaction{
			{ID: 1, UserID: "user-a", CategoryID: 1, Amount: 150.00, Date: day(2024, time.June, 10)},
		},
	}
	service := NewReportService(repo)

	report, err := service.GetMonthlyReport("user-a", 6, 2024)
	assert.NoError(t, err)

	// Documented policy: a zero base yields 0%, even for a positive current total.
	assert.Equal(t, 0.0, report.Comparison.PreviousMonthTotal)
	assert.Equal(t, 0.0, report.Comparison.PercentageChange)
}

func TestGetMonthlyReport_JanuaryComparesAgainstPreviousDecember(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Categories: []domain.Category{
			{ID: 1, Name: "Food", Color: "#FF0000", IsDefault: true},
		},
		Transactions: []domain.Transaction{
			{ID: 1, UserID: "user-a", CategoryID: 1, Amount: 200.00, Date: day(2023, time.December, 15)},
			{ID: 2, UserID: "user-a", CategoryID: 1, Amount: 100.00, Date: day(2024, time.January, 15)},
		},
	}
	service := NewReportService(repo)

	report, err := service.GetMonthlyReport("user-a", 1, 2024)
	assert.NoError(t, err)

	assert.True(t, areEqualRounded(report.Total, 100.00))
	assert.True(t, areEqualRounded(report.Comparison.PreviousMonthTotal, 200.00))
	assert.True(t, areEqualRounded(report.Comparison.PercentageChange, -50.00))
}

func TestGetMonthlyReport_EmptyMonth(t *testing.T) {
	service := NewReportService(&infrastructure.MockTransactionRepository{})

	report, err := service.GetMonthlyReport("user-a", 6, 2024)
	assert.NoError(t, err)

	assert.NotNil(t, report.Categories)
	assert.Empty(t, report.Categories)
	assert.NotNil(t, report.DailyExpenses)
	assert.Empty(t, report.DailyExpenses)
	assert.Equal(t, 0.0, report.Total)
	assert.Equal(t, 0.0, report.Comparison.PercentageChange)
}

func TestGetMonthlyReport_IgnoresOtherUsers(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Categories: []domain.Category{
			{ID: 1, Name: "Food", Color: "#FF0000", IsDefault: true},
		},
		Transactions: []domain.Transaction{
			{ID: 1, UserID: "user-a", CategoryID: 1, Amount: 100.00, Date: day(2024, time.June, 10)},
			{ID: 2, UserID: "user-b", CategoryID: 1, Amount: 999.00, Date: day(2024, time.June, 10)},
		},
	}
	service := NewReportService(repo)

	report, err := service.GetMonthlyReport("user-a", 6, 2024)
	assert.NoError(t, err)
	assert.True(t, areEqualRounded(report.Total, 100.00))
}

func TestPreviousPeriod(t *testing.T) {
	month, year := previousPeriod(1, 2024)
	assert.Equal(t, 12, month)
	assert.Equal(t, 2023, year)

	month, year = previousPeriod(6, 2024)
	assert.Equal(t, 5, month)
	assert.Equal(t, 2024, year)
}
