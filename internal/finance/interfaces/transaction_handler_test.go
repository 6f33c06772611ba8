package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mcardoso/ExpenseTracker/internal/finance/application"
	"github.com/mcardoso/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/mcardoso/ExpenseTracker/internal/finance/errors"
)

func TestGetTransactions_ReturnsPage(t *testing.T) {
	req := authedRequest(http.MethodGet, "/transactions?page=1&limit=20", nil)
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		page: &application.TransactionPage{
			Data: []domain.TransactionWithCategory{
				{
					Transaction: domain.Transaction{
						ID: 1, UserID: "user-1", CategoryID: 2, Amount: 45.50,
						Date: time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC),
					},
					CategoryName:  "Food",
					CategoryColor: "#FF0000",
				},
			},
			Pagination: application.Pagination{Total: 1, Page: 1, Limit: 20, TotalPages: 1},
		},
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.GetTransactions(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Data       []map[string]interface{} `json:"data"`
		Pagination map[string]interface{}   `json:"pagination"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Len(t, response.Data, 1)
	assert.Equal(t, "Food", response.Data[0]["category_name"])
	assert.Equal(t, float64(1), response.Pagination["totalPages"])
}

func TestGetTransactions_Unauthorized(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.GetTransactions(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestGetTransactions_InvalidPaginationValues(t *testing.T) {
	for _, target := range []string{
		"/transactions?page=0",
		"/transactions?page=abc",
		"/transactions?limit=0",
		"/transactions?limit=-5",
	} {
		req := authedRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()

		handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
		handler.GetTransactions(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode, "expected 400 for %s", target)
	}
}

func TestGetTransactions_InvalidDateRange(t *testing.T) {
	req := authedRequest(http.MethodGet, "/transactions?startDate=junk&endDate=2024-06-30", nil)
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.GetTransactions(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestCreateTransaction_ReturnsCreatedID(t *testing.T) {
	body := strings.NewReader(`{"category_id":2,"amount":45.50,"description":"dinner","date":"2024-06-20"}`)
	req := authedRequest(http.MethodPost, "/transactions", body)
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		created: &domain.Transaction{ID: 42, UserID: "user-1", CategoryID: 2, Amount: 45.50},
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response struct {
		Message string         `json:"message"`
		Data    map[string]int `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, 42, response.Data["id"])
}

func TestCreateTransaction_CategoryNotFound(t *testing.T) {
	body := strings.NewReader(`{"category_id":99,"amount":45.50,"date":"2024-06-20"}`)
	req := authedRequest(http.MethodPost, "/transactions", body)
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{err: financeErrors.ErrCategoryNotFound}, respondJSON, respondError)
	handler.CreateTransaction(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestCreateTransaction_ValidationError(t *testing.T) {
	validationErrors := &financeErrors.ValidationErrors{}
	validationErrors.Add(financeErrors.NewFieldValidationError("amount", "must be greater than zero"))

	body := strings.NewReader(`{"category_id":2,"amount":-1,"date":"2024-06-20"}`)
	req := authedRequest(http.MethodPost, "/transactions", body)
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{err: validationErrors}, respondJSON, respondError)
	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Len(t, response["errors"], 1)
}

func TestCreateTransaction_InvalidBody(t *testing.T) {
	req := authedRequest(http.MethodPost, "/transactions", strings.NewReader("not json"))
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.CreateTransaction(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	body := strings.NewReader(`{"id":7,"category_id":2,"amount":1,"date":"2024-06-20"}`)
	req := authedRequest(http.MethodPut, "/transactions", body)
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{err: financeErrors.ErrTransactionNotFound}, respondJSON, respondError)
	handler.UpdateTransaction(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestUpdateTransaction_MissingID(t *testing.T) {
	body := strings.NewReader(`{"category_id":2,"amount":1,"date":"2024-06-20"}`)
	req := authedRequest(http.MethodPut, "/transactions", body)
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.UpdateTransaction(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestDeleteTransaction_Success(t *testing.T) {
	req := authedRequest(http.MethodDelete, "/transactions?id=7", nil)
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.DeleteTransaction(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	req := authedRequest(http.MethodDelete, "/transactions?id=7", nil)
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{err: financeErrors.ErrTransactionNotFound}, respondJSON, respondError)
	handler.DeleteTransaction(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestDeleteTransaction_MissingID(t *testing.T) {
	req := authedRequest(http.MethodDelete, "/transactions", nil)
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.DeleteTransaction(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}
