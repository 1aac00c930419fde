package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/juampy12/super-juampy-sub000/internal/model"
)

// ErrInvalidPin is returned when verify_employee_pin matches no active
// employee for the store. Callers must not distinguish wrong PIN from unknown
// employee.
var ErrInvalidPin = errors.New("pin invalido")

// EmployeeRepository wraps employee lookups. VerifyPin forwards to the
// database function:
//
//	verify_employee_pin(store uuid, pin text) → uuid | NULL
//
// The function compares the PIN against the stored bcrypt hash server-side
// and returns the employee id on match, NULL otherwise. It never raises for
// a wrong PIN.
type EmployeeRepository interface {
	VerifyPin(ctx context.Context, storeID uuid.UUID, pin string) (*model.Employee, error)
}

type employeeRepo struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository { return &employeeRepo{db: db} }

func (r *employeeRepo) VerifyPin(ctx context.Context, storeID uuid.UUID, pin string) (*model.Employee, error) {
	var employeeID *uuid.UUID
	err := r.db.WithContext(ctx).
		Raw("SELECT verify_employee_pin(?::uuid, ?)", storeID, pin).
		Scan(&employeeID).Error
	if err != nil {
		return nil, err
	}
	if employeeID == nil {
		return nil, ErrInvalidPin
	}

	var e model.Employee
	if err := r.db.WithContext(ctx).First(&e, *employeeID).Error; err != nil {
		return nil, err
	}
	return &e, nil
}
