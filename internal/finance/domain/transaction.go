package domain

import (
	"regexp"
	"time"

	financeErrors "github.com/mcardoso/ExpenseTracker/internal/finance/errors"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const dateLayout = "2006-01-02"

// Transaction is a single expense entry recorded by a user against a
// category. Date carries no time component.
type Transaction struct {
	ID          int       `json:"id"`
	UserID      string    `json:"user_id"` // user UUID
	CategoryID  int       `json:"category_id"`
	Amount      float64   `json:"amount"`
	Description *string   `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

// TransactionWithCategory is a transaction joined with its category's
// display attributes, as returned by list queries.
type TransactionWithCategory struct {
	Transaction
	CategoryName  string `json:"category_name"`
	CategoryColor string `json:"category_color"`
}

// CategoryTotal is one row of the per-category monthly breakdown.
type CategoryTotal struct {
	CategoryID int     `json:"id"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Total      float64 `json:"total"`
}

// DailyTotal is one row of the per-day monthly series. Days with no
// transactions are omitted, so Day values are sparse.
type DailyTotal struct {
	Day   int     `json:"day"`
	Total float64 `json:"total"`
}

// NewTransaction validates the raw payload fields and builds a transaction.
// Validation is pure: it never touches the store, and it reports every
// violated field at once.
func NewTransaction(userID string, categoryID int, amount float64, description *string, date string) (*Transaction, error) {
	validationErrors := &financeErrors.ValidationErrors{}
	if categoryID <= 0 {
		validationErrors.Add(financeErrors.NewFieldValidationError("category_id", "must be a positive integer"))
	}
	if amount <= 0 {
		validationErrors.Add(financeErrors.NewFieldValidationError("amount", "must be greater than zero"))
	}

	var parsedDate time.Time
	if !dateRegex.MatchString(date) {
		validationErrors.Add(financeErrors.NewFieldValidationError("date", "must be in YYYY-MM-DD format"))
	} else {
		var err error
		parsedDate, err = time.Parse(dateLayout, date)
		if err != nil {
			validationErrors.Add(financeErrors.NewFieldValidationError("date", "is not a valid calendar date"))
		}
	}

	if validationErrors.HasErrors() {
		return nil, validationErrors
	}

	return &Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
		Date:        parsedDate,
	}, nil
}

type TransactionRepository interface {
	// Save persists the transaction and sets its generated ID.
	Save(transaction *Transaction) error
	// FindByID returns the transaction only when it belongs to the user.
	FindByID(transactionID int, userID string) (*Transaction, error)
	// FindPage returns transactions joined with category name/color,
	// ordered by date descending. Both date bounds are inclusive and only
	// applied when both are non-nil.
	FindPage(userID string, startDate, endDate *time.Time, limit, offset int) ([]TransactionWithCategory, error)
	// CountByUser counts the rows FindPage would page through.
	CountByUser(userID string, startDate, endDate *time.Time) (int, error)
	Update(transaction Transaction) error
	Delete(transactionID int) error
	// CountByCategory counts transactions of any user referencing the category.
	CountByCategory(categoryID int) (int, error)
	// SumByCategory sums amounts per category for the user's transactions in
	// the given month, ordered by total descending. Categories without
	// matching transactions are omitted.
	SumByCategory(userID string, month, year int) ([]CategoryTotal, error)
	// SumByDay sums amounts per day of month, ordered by day ascending.
	// Days without matching transactions are omitted.
	SumByDay(userID string, month, year int) ([]DailyTotal, error)
	// SumForPeriod returns the user's total for the month, 0 when there are
	// no matching transactions.
	SumForPeriod(userID string, month, year int) (float64, error)
}
