package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, name, email, COALESCE(phone, ''), COALESCE(city, ''), COALESCE(address, ''), created_on`

func scanCustomer(row interface{ Scan(...any) error }) (*domain.Customer, error) {
	c := &domain.Customer{}
	var createdOn time.Time
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.Address, &createdOn)
	if err != nil {
		return nil, err
	}
	c.CreatedOn = createdOn.Format("2006-01-02")
	return c, nil
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO bm_customers (name, email, phone, city, address, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	c.CreatedOn = now.Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, c.Name, c.Email, c.Phone, c.City, c.Address, now).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM bm_customers WHERE id = $1`
	return scanCustomer(r.db.QueryRowContext(ctx, query, id))
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM bm_customers WHERE email = $1`
	return scanCustomer(r.db.QueryRowContext(ctx, query, email))
}

func (r *customerRepository) List(ctx context.Context, limit int32) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM bm_customers ORDER BY id LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCustomers(rows)
}

func (r *customerRepository) Search(ctx context.Context, email, city string) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM bm_customers WHERE 1=1`
	args := []interface{}{}
	if email != "" {
		args = append(args, email)
		query += fmt.Sprintf(" AND email = $%d", len(args))
	}
	if city != "" {
		args = append(args, city)
		query += fmt.Sprintf(" AND city = $%d", len(args))
	}
	query += " ORDER BY id"
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCustomers(rows)
}

func (r *customerRepository) Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error) {
	query := `UPDATE bm_customers SET `
	args := []interface{}{}
	set := func(col string, val interface{}) {
		if len(args) > 0 {
			query += ", "
		}
		args = append(args, val)
		query += fmt.Sprintf("%s = $%d", col, len(args))
	}
	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}
	if patch.City != nil {
		set("city", *patch.City)
	}
	if patch.Address != nil {
		set("address", *patch.Address)
	}
	args = append(args, id)
	query += fmt.Sprintf(" WHERE id = $%d RETURNING "+customerColumns, len(args))
	return scanCustomer(r.db.QueryRowContext(ctx, query, args...))
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bm_customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *customerRepository) HasDependents(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM bm_accounts WHERE customer_id = $1)
	       OR EXISTS (SELECT 1 FROM bm_loans WHERE customer_id = $1)`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	return exists, err
}

func collectCustomers(rows *sql.Rows) ([]domain.Customer, error) {
	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}
