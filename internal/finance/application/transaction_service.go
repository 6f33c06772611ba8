package application

import (
	"math"
	"time"

	"github.com/mcardoso/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/mcardoso/ExpenseTracker/internal/finance/errors"
)

// CategoryChecker answers whether a category is usable by a user, meaning it
// is owned by the user or is a default category.
type CategoryChecker interface {
	ExistsAccessibleByID(categoryID int, userID string) (bool, error)
}

type TransactionService struct {
	repo       domain.TransactionRepository
	categories CategoryChecker
}

func NewTransactionService(repo domain.TransactionRepository, categories CategoryChecker) *TransactionService {
	return &TransactionService{repo: repo, categories: categories}
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type TransactionPage struct {
	Data       []domain.TransactionWithCategory `json:"data"`
	Pagination Pagination                       `json:"pagination"`
}

func (s *TransactionService) GetUserTransactions(userID string, startDate, endDate *time.Time, page, limit int) (*TransactionPage, error) {
	offset := (page - 1) * limit

	transactions, err := s.repo.FindPage(userID, startDate, endDate, limit, offset)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []domain.TransactionWithCategory{}
	}

	total, err := s.repo.CountByUser(userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return &TransactionPage{
		Data: transactions,
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *TransactionService) CreateTransaction(userID string, categoryID int, amount float64, description *string, date string) (*domain.Transaction, error) {
	transaction, err := domain.NewTransaction(userID, categoryID, amount, description, date)
	if err != nil {
		return nil, err
	}

	exists, err := s.categories.ExistsAccessibleByID(categoryID, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, financeErrors.ErrCategoryNotFound
	}

	if err := s.repo.Save(transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

// UpdateTransaction replaces every field of the transaction, it is not a
// partial merge.
func (s *TransactionService) UpdateTransaction(userID string, transactionID int, categoryID int, amount float64, description *string, date string) error {
	replacement, err := domain.NewTransaction(userID, categoryID, amount, description, date)
	if err != nil {
		return err
	}

	if _, err := s.repo.FindByID(transactionID, userID); err != nil {
		return err
	}

	exists, err := s.categories.ExistsAccessibleByID(categoryID, userID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.ErrCategoryNotFound
	}

	replacement.ID = transactionID
	return s.repo.Update(*replacement)
}

func (s *TransactionService) DeleteTransaction(userID string, transactionID int) error {
	if _, err := s.repo.FindByID(transactionID, userID); err != nil {
		return err
	}
	return s.repo.Delete(transactionID)
}
