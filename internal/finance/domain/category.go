package domain

import (
	"regexp"
	"strings"

	financeErrors "github.com/mcardoso/ExpenseTracker/internal/finance/errors"
)

var colorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Category is an expense category. Default categories are seeded system-wide,
// carry no owner and cannot be edited or deleted through the user-facing API.
type Category struct {
	ID        int     `json:"id"`
	UserID    *string `json:"user_id,omitempty"` // user UUID, nil for default categories
	Name      string  `json:"name"`
	Color     string  `json:"color"`
	IsDefault bool    `json:"is_default"`
}

// ValidateCategoryInput checks name and color without touching the store.
// It reports every violated field.
func ValidateCategoryInput(name, color string) error {
	validationErrors := &financeErrors.ValidationErrors{}
	if len(strings.TrimSpace(name)) < 2 {
		validationErrors.Add(financeErrors.NewFieldValidationError("name", "must be at least 2 characters long"))
	}
	if !colorRegex.MatchString(color) {
		validationErrors.Add(financeErrors.NewFieldValidationError("color", "must be a hex color code like #FF6384"))
	}
	if validationErrors.HasErrors() {
		return validationErrors
	}
	return nil
}

type CategoryRepository interface {
	// FindAccessible returns the categories owned by the user plus all
	// default categories, ordered by name ascending.
	FindAccessible(userID string) ([]Category, error)
	// FindEditableByID returns the category only when it is owned by the
	// user and is not a default category.
	FindEditableByID(categoryID int, userID string) (*Category, error)
	// ExistsAccessibleByID reports whether the category is owned by the
	// user or is a default category.
	ExistsAccessibleByID(categoryID int, userID string) (bool, error)
	Save(category *Category) error
	Update(category Category) error
	Delete(categoryID int) error
}
