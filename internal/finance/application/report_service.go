package application

import (
	"github.com/mcardoso/ExpenseTracker/internal/finance/domain"
)

type ReportService struct {
	repo domain.TransactionRepository
}

func NewReportService(repo domain.TransactionRepository) *ReportService {
	return &ReportService{repo: repo}
}

type Comparison struct {
	PreviousMonthTotal float64 `json:"previousMonthTotal"`
	PercentageChange   float64 `json:"percentageChange"`
}

type MonthlyReport struct {
	Categories    []domain.CategoryTotal `json:"categories"`
	Total         float64                `json:"total"`
	DailyExpenses []domain.DailyTotal    `json:"dailyExpenses"`
	Comparison    Comparison             `json:"comparison"`
}

// GetMonthlyReport bundles the per-category breakdown, the daily series and
// the comparison against the previous month for one (month, year) period.
func (s *ReportService) GetMonthlyReport(userID string, month, year int) (*MonthlyReport, error) {
	categories, err := s.repo.SumByCategory(userID, month, year)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []domain.CategoryTotal{}
	}

	dailyExpenses, err := s.repo.SumByDay(userID, month, year)
	if err != nil {
		return nil, err
	}
	if dailyExpenses == nil {
		dailyExpenses = []domain.DailyTotal{}
	}

	total, err := s.repo.SumForPeriod(userID, month, year)
	if err != nil {
		return nil, err
	}

	previousMonth, previousYear := previousPeriod(month, year)
	previousTotal, err := s.repo.SumForPeriod(userID, previousMonth, previousYear)
	if err != nil {
		return nil, err
	}

	// A zero previous total yields 0% even when the current total is
	// positive. Accepted policy, not a division-by-zero workaround only.
	percentageChange := 0.0
	if previousTotal > 0 {
		percentageChange = ((total - previousTotal) / previousTotal) * 100
	}

	return &MonthlyReport{
		Categories:    categories,
		Total:         total,
		DailyExpenses: dailyExpenses,
		Comparison: Comparison{
			PreviousMonthTotal: previousTotal,
			PercentageChange:   percentageChange,
		},
	}, nil
}

// previousPeriod wraps January back to December of the previous year.
func previousPeriod(month, year int) (int, int) {
	if month == 1 {
		return 12, year - 1
	}
	return month - 1, year
}
