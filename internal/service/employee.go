package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"
)

type employeeService struct {
	employeeRepo repository.EmployeeRepository
	storeTimeout time.Duration
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository, storeTimeout time.Duration) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo, storeTimeout: storeTimeout}
}

func (s *employeeService) AddEmployee(ctx context.Context, name, role, email, phone, password string) (*domain.Employee, error) {
	if name == "" || role == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	_, err := s.employeeRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrDuplicateEmail
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, mapStoreErr(err, domain.ErrEmployeeNotFound)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	employee := &domain.Employee{
		Name:         name,
		Role:         role,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, mapStoreErr(err, domain.ErrEmployeeNotFound)
	}
	return employee, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, domain.ErrEmployeeNotFound)
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, mapStoreErr(err, domain.ErrStoreUnavailable)
	}
	return employees, nil
}
