package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository/postgres"
)

func TestCustomerRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		customer := &domain.Customer{
			Name:    "Ada Lovelace",
			Email:   "ada@example.com",
			Phone:   "555-0100",
			City:    "London",
			Address: "12 Byron St",
		}

		mock.ExpectQuery("INSERT INTO bm_customers").
			WithArgs(customer.Name, customer.Email, customer.Phone, customer.City, customer.Address, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, customer)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), customer.ID)
	})
}

func TestCustomerRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("PatchesOnlyGivenFields", func(t *testing.T) {
		city := "Cambridge"
		rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "city", "address", "created_on"}).
			AddRow(1, "Ada Lovelace", "ada@example.com", "555-0100", "Cambridge", "12 Byron St", mustTime(t, "2026-01-15"))

		mock.ExpectQuery("UPDATE bm_customers SET city").
			WithArgs("Cambridge", int64(1)).
			WillReturnRows(rows)

		customer, err := repo.Update(ctx, 1, domain.CustomerPatch{City: &city})
		assert.NoError(t, err)
		assert.Equal(t, "Cambridge", customer.City)
	})
}

func TestCustomerRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM bm_customers").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, 1)
		assert.NoError(t, err)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM bm_customers").
			WithArgs(int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, 9)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestCustomerRepository_HasDependents(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("WithAccountsOrLoans", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		dependents, err := repo.HasDependents(ctx, 1)
		assert.NoError(t, err)
		assert.True(t, dependents)
	})
}
