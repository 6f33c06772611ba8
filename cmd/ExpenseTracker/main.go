package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/mcardoso/ExpenseTracker/internal/auth"
	database "github.com/mcardoso/ExpenseTracker/internal/db"
	"github.com/mcardoso/ExpenseTracker/internal/finance/application"
	"github.com/mcardoso/ExpenseTracker/internal/finance/infrastructure"
	"github.com/mcardoso/ExpenseTracker/internal/finance/interfaces"
	"github.com/mcardoso/ExpenseTracker/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errorList ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}

	if len(errorList) > 0 && len(errorList[0]) > 0 {
		payload["errors"] = errorList[0]
	}

	respondJSON(w, status, payload)
}

type Server struct {
	router             *http.ServeMux
	dbService          *database.DBService
	authHandler        *auth.Handler
	authService        auth.Service
	userHandler        *user.Handler
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
	reportHandler      *interfaces.ReportHandler
}

func NewServer(
	dbService *database.DBService,
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	categoryHandler *interfaces.CategoryHandler,
	transactionHandler *interfaces.TransactionHandler,
	reportHandler *interfaces.ReportHandler,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		dbService:          dbService,
		authHandler:        authHandler,
		authService:        authService,
		userHandler:        userHandler,
		categoryHandler:    categoryHandler,
		transactionHandler: transactionHandler,
		reportHandler:      reportHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, health)
}

func (s *Server) RegisterRoutes() {
	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()

	protectedRoutes.Handle("GET /api/protected/categories",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.categoryHandler.GetCategories)))
	protectedRoutes.Handle("POST /api/protected/categories",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	protectedRoutes.Handle("PUT /api/protected/categories",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	protectedRoutes.Handle("DELETE /api/protected/categories",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	protectedRoutes.Handle("GET /api/protected/transactions",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.transactionHandler.GetTransactions)))
	protectedRoutes.Handle("POST /api/protected/transactions",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	protectedRoutes.Handle("PUT /api/protected/transactions",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	protectedRoutes.Handle("DELETE /api/protected/transactions",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	protectedRoutes.Handle("GET /api/protected/reports",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.reportHandler.GetMonthlyReport)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		log.Fatalf("Could not run database migrations: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(userService, jwtManager)
	authHandler := auth.NewHandler(authService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)

	categoryService := application.NewCategoryService(categoryRepo, transactionRepo)
	transactionService := application.NewTransactionService(transactionRepo, categoryRepo)
	reportService := application.NewReportService(transactionRepo)

	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)
	reportHandler := interfaces.NewReportHandler(reportService, respondJSON, respondError)

	server := NewServer(dbService, authHandler, authService, userHandler, categoryHandler, transactionHandler, reportHandler)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, loggingMiddleware(server.router)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
