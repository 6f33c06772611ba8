package auth

import (
	"errors"
	"net/http"

	"github.com/mcardoso/ExpenseTracker/internal/user"
)

var ErrInternalError = errors.New("internal Server Error")

type Service interface {
	Login(email, password string) (string, *user.User, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

func (s *service) Login(email, password string) (string, *user.User, error) {
	existingUser, err := s.userService.VerifyCredentials(email, password)
	if err != nil {
		return "", nil, err
	}

	accessToken, err := s.jwtManager.GenerateAccessJWT(existingUser.ID, defaultJWTDuration)
	if err != nil {
		return "", nil, ErrInternalError
	}

	return accessToken, existingUser, nil
}
