package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/mcardoso/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/mcardoso/ExpenseTracker/internal/finance/errors"
)

type CategoryServiceInterface interface {
	GetUserCategories(userID string) ([]domain.Category, error)
	CreateCategory(userID, name, color string) (*domain.Category, error)
	UpdateCategory(userID string, categoryID int, name, color string) error
	DeleteCategory(userID string, categoryID int) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categories, err := h.service.GetUserCategories(userID)
	if err != nil {
		log.Printf("Error retrieving categories: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	h.respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.service.CreateCategory(userID, req.Name, req.Color); err != nil {
		if respondOnValidationError(h.respondError, w, err) {
			return
		}
		log.Printf("Error creating category: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Category successfully created.",
	})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID <= 0 {
		h.respondError(w, http.StatusBadRequest, "Category ID must be a positive integer")
		return
	}

	if err := h.service.UpdateCategory(userID, req.ID, req.Name, req.Color); err != nil {
		if respondOnValidationError(h.respondError, w, err) {
			return
		}
		if errors.Is(err, financeErrors.ErrCategoryNotFound) {
			h.respondError(w, http.StatusNotFound, "Category not found or cannot be edited")
			return
		}
		log.Printf("Error updating category: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Category successfully updated.",
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		h.respondError(w, http.StatusBadRequest, "Category ID is required")
		return
	}
	categoryID, err := strconv.Atoi(idStr)
	if err != nil || categoryID <= 0 {
		h.respondError(w, http.StatusBadRequest, "Category ID must be a positive integer")
		return
	}

	if err := h.service.DeleteCategory(userID, categoryID); err != nil {
		if errors.Is(err, financeErrors.ErrCategoryNotFound) {
			h.respondError(w, http.StatusNotFound, "Category not found or cannot be deleted")
			return
		}
		if errors.Is(err, financeErrors.ErrCategoryInUse) {
			h.respondError(w, http.StatusBadRequest, "Cannot delete a category that has associated transactions")
			return
		}
		log.Printf("Error deleting category: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Category successfully deleted.",
	})
}

// respondOnValidationError writes a 400 with per-field details when err is a
// validation error, reporting whether it handled the error.
func respondOnValidationError(
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
	w http.ResponseWriter,
	err error,
) bool {
	if financeErrors.IsValidationErrors(err) {
		var validationErrors *financeErrors.ValidationErrors
		errors.As(err, &validationErrors)
		respondError(w, http.StatusBadRequest, "Invalid request data", validationErrors.Messages())
		return true
	}
	if financeErrors.IsValidationError(err) {
		respondError(w, http.StatusBadRequest, err.Error())
		return true
	}
	return false
}
