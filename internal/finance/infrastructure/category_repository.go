package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/mcardoso/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/mcardoso/ExpenseTracker/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAccessible(userID string) ([]domain.Category, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, name, color, is_default FROM categories
		 WHERE user_id = $1 OR is_default = TRUE
		 ORDER BY name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindEditableByID(categoryID int, userID string) (*domain.Category, error) {
	row := r.db.QueryRow(
		`SELECT id, user_id, name, color, is_default FROM categories
		 WHERE id = $1 AND user_id = $2 AND is_default = FALSE`, categoryID, userID)

	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (r *CategoryRepository) ExistsAccessibleByID(categoryID int, userID string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1 AND (user_id = $2 OR is_default = TRUE))"
	err := r.db.QueryRow(query, categoryID, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CategoryRepository) Save(category *domain.Category) error {
	return r.db.QueryRow(
		`INSERT INTO categories (user_id, name, color, is_default)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		category.UserID, category.Name, category.Color, category.IsDefault,
	).Scan(&category.ID)
}

func (r *CategoryRepository) Update(category domain.Category) error {
	_, err := r.db.Exec(
		`UPDATE categories SET name = $1, color = $2 WHERE id = $3`,
		category.Name, category.Color, category.ID,
	)
	return err
}

func (r *CategoryRepository) Delete(categoryID int) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, categoryID)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var category domain.Category
	var userID sql.NullString
	if err := row.Scan(&category.ID, &userID, &category.Name, &category.Color, &category.IsDefault); err != nil {
		return nil, err
	}
	if userID.Valid {
		category.UserID = &userID.String
	}
	return &category, nil
}
