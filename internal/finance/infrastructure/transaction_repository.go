package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mcardoso/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/mcardoso/ExpenseTracker/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(transaction *domain.Transaction) error {
	return r.db.QueryRow(
		`INSERT INTO transactions (user_id, category_id, amount, description, date)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		transaction.UserID, transaction.CategoryID, transaction.Amount,
		transaction.Description, transaction.Date,
	).Scan(&transaction.ID)
}

func (r *TransactionRepository) FindByID(transactionID int, userID string) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := r.db.QueryRow(
		`SELECT id, user_id, category_id, amount, description, date
		 FROM transactions WHERE id = $1 AND user_id = $2`, transactionID, userID,
	).Scan(&transaction.ID, &transaction.UserID, &transaction.CategoryID,
		&transaction.Amount, &transaction.Description, &transaction.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) FindPage(userID string, startDate, endDate *time.Time, limit, offset int) ([]domain.TransactionWithCategory, error) {
	query := `SELECT t.id, t.user_id, t.category_id, t.amount, t.description, t.date,
	                 c.name AS category_name, c.color AS category_color
	          FROM transactions t
	          JOIN categories c ON t.category_id = c.id
	          WHERE t.user_id = $1`
	args := []interface{}{userID}

	if startDate != nil && endDate != nil {
		query += fmt.Sprintf(" AND t.date BETWEEN $%d AND $%d", len(args)+1, len(args)+2)
		args = append(args, *startDate, *endDate)
	}

	query += fmt.Sprintf(" ORDER BY t.date DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.TransactionWithCategory
	for rows.Next() {
		var transaction domain.TransactionWithCategory
		if err := rows.Scan(&transaction.ID, &transaction.UserID, &transaction.CategoryID,
			&transaction.Amount, &transaction.Description, &transaction.Date,
			&transaction.CategoryName, &transaction.CategoryColor); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) CountByUser(userID string, startDate, endDate *time.Time) (int, error) {
	query := "SELECT COUNT(*) FROM transactions WHERE user_id = $1"
	args := []interface{}{userID}

	if startDate != nil && endDate != nil {
		query += " AND date BETWEEN $2 AND $3"
		args = append(args, *startDate, *endDate)
	}

	var total int
	err := r.db.QueryRow(query, args...).Scan(&total)
	return total, err
}

func (r *TransactionRepository) Update(transaction domain.Transaction) error {
	_, err := r.db.Exec(
		`UPDATE transactions SET category_id = $1, amount = $2, description = $3, date = $4
		 WHERE id = $5`,
		transaction.CategoryID, transaction.Amount, transaction.Description,
		transaction.Date, transaction.ID,
	)
	return err
}

func (r *TransactionRepository) Delete(transactionID int) error {
	_, err := r.db.Exec(`DELETE FROM transactions WHERE id = $1`, transactionID)
	return err
}

func (r *TransactionRepository) CountByCategory(categoryID int) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM transactions WHERE category_id = $1`, categoryID).Scan(&count)
	return count, err
}

func (r *TransactionRepository) SumByCategory(userID string, month, year int) ([]domain.CategoryTotal, error) {
	rows, err := r.db.Query(
		`SELECT c.id, c.name, c.color, SUM(t.amount) AS total
		 FROM transactions t
		 JOIN categories c ON t.category_id = c.id
		 WHERE t.user_id = $1
		   AND EXTRACT(MONTH FROM t.date) = $2
		   AND EXTRACT(YEAR FROM t.date) = $3
		 GROUP BY c.id, c.name, c.color
		 ORDER BY total DESC`, userID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.CategoryTotal
	for rows.Next() {
		var total domain.CategoryTotal
		if err := rows.Scan(&total.CategoryID, &total.Name, &total.Color, &total.Total); err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}

func (r *TransactionRepository) SumByDay(userID string, month, year int) ([]domain.DailyTotal, error) {
	rows, err := r.db.Query(
		`SELECT EXTRACT(DAY FROM date)::int AS day, SUM(amount) AS total
		 FROM transactions
		 WHERE user_id = $1
		   AND EXTRACT(MONTH FROM date) = $2
		   AND EXTRACT(YEAR FROM date) = $3
		 GROUP BY day
		 ORDER BY day ASC`, userID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.DailyTotal
	for rows.Next() {
		var total domain.DailyTotal
		if err := rows.Scan(&total.Day, &total.Total); err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}

func (r *TransactionRepository) SumForPeriod(userID string, month, year int) (float64, error) {
	var total float64
	err := r.db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0)
		 FROM transactions
		 WHERE user_id = $1
		   AND EXTRACT(MONTH FROM date) = $2
		   AND EXTRACT(YEAR FROM date) = $3`, userID, month, year).Scan(&total)
	return total, err
}
