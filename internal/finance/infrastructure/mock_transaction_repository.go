package infrastructure

import (
	"sort"
	"time"

	"github.com/mcardoso/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/mcardoso/ExpenseTracker/internal/finance/errors"
)

// MockTransactionRepository is an in-memory TransactionRepository. Categories
// holds the rows the join-based queries resolve names and colors from.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	Categories   []domain.Category
	Err          error
	nextID       int
}

func (m *MockTransactionRepository) Save(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	transaction.ID = m.nextID
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionRepository) FindByID(transactionID int, userID string) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, transaction := range m.Transactions {
		if transaction.ID == transactionID && transaction.UserID == userID {
			found := transaction
			return &found, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) FindPage(userID string, startDate, endDate *time.Time, limit, offset int) ([]domain.TransactionWithCategory, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	filtered := m.filter(userID, startDate, endDate)
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	if offset >= len(filtered) {
		return nil, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	var page []domain.TransactionWithCategory
	for _, transaction := range filtered[offset:end] {
		joined := domain.TransactionWithCategory{Transaction: transaction}
		for _, category := range m.Categories {
			if category.ID == transaction.CategoryID {
				joined.CategoryName = category.Name
				joined.CategoryColor = category.Color
				break
			}
		}
		page = append(page, joined)
	}
	return page, nil
}

func (m *MockTransactionRepository) CountByUser(userID string, startDate, endDate *time.Time) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.filter(userID, startDate, endDate)), nil
}

func (m *MockTransactionRepository) Update(transaction domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == transaction.ID {
			m.Transactions[i].CategoryID = transaction.CategoryID
			m.Transactions[i].Amount = transaction.Amount
			m.Transactions[i].Description = transaction.Description
			m.Transactions[i].Date = transaction.Date
			return nil
		}
	}
	return nil
}

func (m *MockTransactionRepository) Delete(transactionID int) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockTransactionRepository) CountByCategory(categoryID int) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	count := 0
	for _, transaction := range m.Transactions {
		if transaction.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (m *MockTransactionRepository) SumByCategory(userID string, month, year int) ([]domain.CategoryTotal, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	sums := make(map[int]float64)
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID && inPeriod(transaction.Date, month, year) {
			sums[transaction.CategoryID] += transaction.Amount
		}
	}

	var totals []domain.CategoryTotal
	for categoryID, sum := range sums {
		total := domain.CategoryTotal{CategoryID: categoryID, Total: sum}
		for _, category := range m.Categories {
			if category.ID == categoryID {
				total.Name = category.Name
				total.Color = category.Color
				break
			}
		}
		totals = append(totals, total)
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})
	return totals, nil
}

func (m *MockTransactionRepository) SumByDay(userID string, month, year int) ([]domain.DailyTotal, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	sums := make(map[int]float64)
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID && inPeriod(transaction.Date, month, year) {
			sums[transaction.Date.Day()] += transaction.Amount
		}
	}

	var totals []domain.DailyTotal
	for day, sum := range sums {
		totals = append(totals, domain.DailyTotal{Day: day, Total: sum})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Day < totals[j].Day
	})
	return totals, nil
}

func (m *MockTransactionRepository) SumForPeriod(userID string, month, year int) (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	var total float64
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID && inPeriod(transaction.Date, month, year) {
			total += transaction.Amount
		}
	}
	return total, nil
}

func (m *MockTransactionRepository) filter(userID string, startDate, endDate *time.Time) []domain.Transaction {
	var filtered []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID {
			continue
		}
		if startDate != nil && endDate != nil {
			if transaction.Date.Before(*startDate) || transaction.Date.After(*endDate) {
				continue
			}
		}
		filtered = append(filtered, transaction)
	}
	return filtered
}

func inPeriod(date time.Time, month, year int) bool {
	return int(date.Month()) == month && date.Year() == year
}
