package interfaces

import (
	"errors"

	"github.com/mcardoso/ExpenseTracker/internal/finance/domain"
)

type MockCategoryService struct {
	categories []domain.Category
	err        error
	shouldFail bool
}

func (m *MockCategoryService) GetUserCategories(userID string) ([]domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.categories, nil
}

func (m *MockCategoryService) CreateCategory(userID, name, color string) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Category{ID: 1, UserID: &userID, Name: name, Color: color}, nil
}

func (m *MockCategoryService) UpdateCategory(userID string, categoryID int, name, color string) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	return m.err
}

func (m *MockCategoryService) DeleteCategory(userID string, categoryID int) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	return m.err
}
