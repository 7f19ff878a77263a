package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	storeTimeout time.Duration
}

func NewCustomerService(customerRepo repository.CustomerRepository, storeTimeout time.Duration) CustomerService {
	return &customerService{customerRepo: customerRepo, storeTimeout: storeTimeout}
}

func (s *customerService) CreateCustomer(ctx context.Context, name, email, phone, city, address string) (*domain.Customer, error) {
	if name == "" || email == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	_, err := s.customerRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrDuplicateEmail
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, mapStoreErr(err, domain.ErrCustomerNotFound)
	}

	customer := &domain.Customer{
		Name:    name,
		Email:   email,
		Phone:   phone,
		City:    city,
		Address: address,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, mapStoreErr(err, domain.ErrCustomerNotFound)
	}
	return customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, domain.ErrCustomerNotFound)
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	customers, err := s.customerRepo.List(ctx, 100)
	if err != nil {
		return nil, mapStoreErr(err, domain.ErrStoreUnavailable)
	}
	return customers, nil
}

func (s *customerService) SearchCustomers(ctx context.Context, email, city string) ([]domain.Customer, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	customers, err := s.customerRepo.Search(ctx, email, city)
	if err != nil {
		return nil, mapStoreErr(err, domain.ErrStoreUnavailable)
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error) {
	if patch.Empty() {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	customer, err := s.customerRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, mapStoreErr(err, domain.ErrCustomerNotFound)
	}
	return customer, nil
}

// DeleteCustomer refuses to remove a customer that accounts or loans still
// reference.
func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	if _, err := s.customerRepo.GetByID(ctx, id); err != nil {
		return mapStoreErr(err, domain.ErrCustomerNotFound)
	}
	dependents, err := s.customerRepo.HasDependents(ctx, id)
	if err != nil {
		return mapStoreErr(err, domain.ErrCustomerNotFound)
	}
	if dependents {
		return domain.ErrCustomerHasDependents
	}
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return mapStoreErr(err, domain.ErrCustomerNotFound)
	}
	return nil
}
