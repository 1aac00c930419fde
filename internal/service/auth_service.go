package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/juampy12/super-juampy-sub000/internal/config"
	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/middleware"
	"github.com/juampy12/super-juampy-sub000/internal/repository"
)

// AuthService exchanges a store + PIN pair for a JWT. PIN verification is
// delegated to verify_employee_pin; the Go layer never sees a hash.
type AuthService interface {
	LoginWithPin(ctx context.Context, req dto.PinLoginRequest) (*dto.PinLoginResponse, error)
}

type authService struct {
	repo repository.EmployeeRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.EmployeeRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) LoginWithPin(ctx context.Context, req dto.PinLoginRequest) (*dto.PinLoginResponse, error) {
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return nil, errors.New("store_id invalido")
	}

	employee, err := s.repo.VerifyPin(ctx, storeID, req.Pin)
	if err != nil {
		// Same message for wrong PIN and any lookup failure
		return nil, errors.New("pin invalido")
	}

	expiration := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	claims := &middleware.JWTClaims{
		EmployeeID: employee.ID.String(),
		StoreID:    employee.StoreID.String(),
		Name:       employee.Name,
		Role:       employee.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.PinLoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		Employee:    employee.Name,
		Role:        employee.Role,
	}, nil
}
