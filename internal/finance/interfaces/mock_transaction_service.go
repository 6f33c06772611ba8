package interfaces

import (
	"errors"
	"time"

	"github.com/mcardoso/ExpenseTracker/internal/finance/application"
	"github.com/mcardoso/ExpenseTracker/internal/finance/domain"
)

type MockTransactionService struct {
	page       *application.TransactionPage
	created    *domain.Transaction
	err        error
	shouldFail bool
}

func (m *MockTransactionService) GetUserTransactions(userID string, startDate, endDate *time.Time, page, limit int) (*application.TransactionPage, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.page, nil
}

func (m *MockTransactionService) CreateTransaction(userID string, categoryID int, amount float64, description *string, date string) (*domain.Transaction, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.created, nil
}

func (m *MockTransactionService) UpdateTransaction(userID string, transactionID int, categoryID int, amount float64, description *string, date string) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	return m.err
}

func (m *MockTransactionService) DeleteTransaction(userID string, transactionID int) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	return m.err
}
