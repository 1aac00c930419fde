package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juampy12/super-juampy-sub000/internal/config"
	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/middleware"
	"github.com/juampy12/super-juampy-sub000/internal/model"
	"github.com/juampy12/super-juampy-sub000/internal/repository"
)

type stubEmployeeRepo struct {
	employee *model.Employee
	pin      string
}

var _ repository.EmployeeRepository = (*stubEmployeeRepo)(nil)

func (r *stubEmployeeRepo) VerifyPin(_ context.Context, storeID uuid.UUID, pin string) (*model.Employee, error) {
	if r.employee == nil || r.employee.StoreID != storeID || pin != r.pin {
		return nil, repository.ErrInvalidPin
	}
	return r.employee, nil
}

func testAuthConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 12}
}

func TestLoginWithPinIssuesToken(t *testing.T) {
	storeID := uuid.New()
	employee := &model.Employee{
		ID:      uuid.New(),
		StoreID: storeID,
		Name:    "Lucia",
		Role:    "cajero",
	}
	svc := NewAuthService(&stubEmployeeRepo{employee: employee, pin: "4321"}, testAuthConfig())

	resp, err := svc.LoginWithPin(context.Background(), dto.PinLoginRequest{
		StoreID: storeID.String(),
		Pin:     "4321",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 12*3600, resp.ExpiresIn)
	assert.Equal(t, "Lucia", resp.Employee)
	assert.Equal(t, "cajero", resp.Role)

	claims := &middleware.JWTClaims{}
	token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, employee.ID.String(), claims.EmployeeID)
	assert.Equal(t, storeID.String(), claims.StoreID)
	assert.Equal(t, "cajero", claims.Role)
}

func TestLoginWithPinSameErrorForAllFailures(t *testing.T) {
	storeID := uuid.New()
	employee := &model.Employee{ID: uuid.New(), StoreID: storeID, Role: "cajero"}
	svc := NewAuthService(&stubEmployeeRepo{employee: employee, pin: "4321"}, testAuthConfig())

	// Wrong PIN
	_, err := svc.LoginWithPin(context.Background(), dto.PinLoginRequest{StoreID: storeID.String(), Pin: "0000"})
	require.Error(t, err)
	wrongPin := err.Error()

	// Wrong store
	_, err = svc.LoginWithPin(context.Background(), dto.PinLoginRequest{StoreID: uuid.NewString(), Pin: "4321"})
	require.Error(t, err)
	assert.Equal(t, wrongPin, err.Error())
}

func TestLoginWithPinBadStoreID(t *testing.T) {
	svc := NewAuthService(&stubEmployeeRepo{}, testAuthConfig())
	_, err := svc.LoginWithPin(context.Background(), dto.PinLoginRequest{StoreID: "nope", Pin: "1234"})
	assert.Error(t, err)
}
