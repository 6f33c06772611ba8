package application

import (
	"github.com/mcardoso/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/mcardoso/ExpenseTracker/internal/finance/errors"
)

// TransactionCounter reports how many transactions reference a category.
// Satisfied by the transaction repository.
type TransactionCounter interface {
	CountByCategory(categoryID int) (int, error)
}

type CategoryService struct {
	repo         domain.CategoryRepository
	transactions TransactionCounter
}

func NewCategoryService(repo domain.CategoryRepository, transactions TransactionCounter) *CategoryService {
	return &CategoryService{repo: repo, transactions: transactions}
}

func (s *CategoryService) GetUserCategories(userID string) ([]domain.Category, error) {
	categories, err := s.repo.FindAccessible(userID)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) CreateCategory(userID, name, color string) (*domain.Category, error) {
	if err := domain.ValidateCategoryInput(name, color); err != nil {
		return nil, err
	}

	category := &domain.Category{
		UserID:    &userID,
		Name:      name,
		Color:     color,
		IsDefault: false,
	}
	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(userID string, categoryID int, name, color string) error {
	if err := domain.ValidateCategoryInput(name, color); err != nil {
		return err
	}

	// Default categories never match here, which keeps them immutable.
	category, err := s.repo.FindEditableByID(categoryID, userID)
	if err != nil {
		return err
	}

	category.Name = name
	category.Color = color
	return s.repo.Update(*category)
}

// DeleteCategory checks existence and ownership before the reference count.
// The ordering matters: a category in use must still report not-found to a
// caller who does not own it.
func (s *CategoryService) DeleteCategory(userID string, categoryID int) error {
	if _, err := s.repo.FindEditableByID(categoryID, userID); err != nil {
		return err
	}

	count, err := s.transactions.CountByCategory(categoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return financeErrors.ErrCategoryInUse
	}

	return s.repo.Delete(categoryID)
}
