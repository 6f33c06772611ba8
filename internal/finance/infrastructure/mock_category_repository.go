package infrastructure

import (
	"sort"

	"github.com/mcardoso/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/mcardoso/ExpenseTracker/internal/finance/errors"
)

// MockCategoryRepository is an in-memory CategoryRepository used by service
// tests in place of the SQL implementation.
type MockCategoryRepository struct {
	Categories []domain.Category
	Err        error
	nextID     int
}

func (m *MockCategoryRepository) FindAccessible(userID string) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var categories []domain.Category
	for _, category := range m.Categories {
		if category.IsDefault || (category.UserID != nil && *category.UserID == userID) {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (m *MockCategoryRepository) FindEditableByID(categoryID int, userID string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, category := range m.Categories {
		if category.ID == categoryID && !category.IsDefault &&
			category.UserID != nil && *category.UserID == userID {
			found := category
			return &found, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) ExistsAccessibleByID(categoryID int, userID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, category := range m.Categories {
		if category.ID == categoryID &&
			(category.IsDefault || (category.UserID != nil && *category.UserID == userID)) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepository) Save(category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	category.ID = m.nextID
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) Update(category domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == category.ID {
			m.Categories[i].Name = category.Name
			m.Categories[i].Color = category.Color
			return nil
		}
	}
	return nil
}

func (m *MockCategoryRepository) Delete(categoryID int) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return nil
}
