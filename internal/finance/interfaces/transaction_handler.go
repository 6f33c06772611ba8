package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/mcardoso/ExpenseTracker/internal/finance/application"
	"github.com/mcardoso/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/mcardoso/ExpenseTracker/internal/finance/errors"
)

type TransactionServiceInterface interface {
	GetUserTransactions(userID string, startDate, endDate *time.Time, page, limit int) (*application.TransactionPage, error)
	CreateTransaction(userID string, categoryID int, amount float64, description *string, date string) (*domain.Transaction, error)
	UpdateTransaction(userID string, transactionID int, categoryID int, amount float64, description *string, date string) error
	DeleteTransaction(userID string, transactionID int) error
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type transactionRequest struct {
	ID          int     `json:"id"`
	CategoryID  int     `json:"category_id"`
	Amount      float64 `json:"amount"`
	Description *string `json:"description"`
	Date        string  `json:"date"`
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")

	// The date filter only applies when both bounds are present.
	var startDate, endDate *time.Time
	if startDateStr != "" && endDateStr != "" {
		start, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid start date format")
			return
		}
		end, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid end date format")
			return
		}
		startDate, endDate = &start, &end
	}

	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed <= 0 {
			h.respondError(w, http.StatusBadRequest, "Invalid page value")
			return
		}
		page = parsed
	}

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			h.respondError(w, http.StatusBadRequest, "Invalid limit value")
			return
		}
		limit = parsed
	}

	transactionPage, err := h.service.GetUserTransactions(userID, startDate, endDate, page, limit)
	if err != nil {
		log.Printf("Error retrieving transactions: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, transactionPage)
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.service.CreateTransaction(userID, req.CategoryID, req.Amount, req.Description, req.Date)
	if err != nil {
		if respondOnValidationError(h.respondError, w, err) {
			return
		}
		if errors.Is(err, financeErrors.ErrCategoryNotFound) {
			h.respondError(w, http.StatusNotFound, "Category not found or does not belong to the user")
			return
		}
		log.Printf("Error creating transaction: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Transaction successfully recorded.",
		"data":    map[string]int{"id": transaction.ID},
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID <= 0 {
		h.respondError(w, http.StatusBadRequest, "Transaction ID must be a positive integer")
		return
	}

	err := h.service.UpdateTransaction(userID, req.ID, req.CategoryID, req.Amount, req.Description, req.Date)
	if err != nil {
		if respondOnValidationError(h.respondError, w, err) {
			return
		}
		if errors.Is(err, financeErrors.ErrTransactionNotFound) {
			h.respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		if errors.Is(err, financeErrors.ErrCategoryNotFound) {
			h.respondError(w, http.StatusNotFound, "Category not found or does not belong to the user")
			return
		}
		log.Printf("Error updating transaction: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Transaction successfully updated.",
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		h.respondError(w, http.StatusBadRequest, "Transaction ID is required")
		return
	}
	transactionID, err := strconv.Atoi(idStr)
	if err != nil || transactionID <= 0 {
		h.respondError(w, http.StatusBadRequest, "Transaction ID must be a positive integer")
		return
	}

	if err := h.service.DeleteTransaction(userID, transactionID); err != nil {
		if errors.Is(err, financeErrors.ErrTransactionNotFound) {
			h.respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		log.Printf("Error deleting transaction: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Transaction successfully deleted.",
	})
}
