package interfaces

import (
	"log"
	"net/http"
	"strconv"

	"github.com/mcardoso/ExpenseTracker/internal/finance/application"
)

type ReportServiceInterface interface {
	GetMonthlyReport(userID string, month, year int) (*application.MonthlyReport, error)
}

type ReportHandler struct {
	service      ReportServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewReportHandler(
	service ReportServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *ReportHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &ReportHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *ReportHandler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")
	if monthStr == "" || yearStr == "" {
		h.respondError(w, http.StatusBadRequest, "Month and year are required")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		h.respondError(w, http.StatusBadRequest, "Month must be between 1 and 12")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year <= 0 {
		h.respondError(w, http.StatusBadRequest, "Year must be a positive integer")
		return
	}

	report, err := h.service.GetMonthlyReport(userID, month, year)
	if err != nil {
		log.Printf("Error generating report: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	h.respondJSON(w, http.StatusOK, report)
}
