package interfaces

import (
	"errors"

	"github.com/mcardoso/ExpenseTracker/internal/finance/application"
)

type MockReportService struct {
	report     *application.MonthlyReport
	shouldFail bool
}

func (m *MockReportService) GetMonthlyReport(userID string, month, year int) (*application.MonthlyReport, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.report, nil
}
