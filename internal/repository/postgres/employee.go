package postgres

import (
	"context"
	"database/sql"
	"time"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"
)

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, name, role, email, COALESCE(phone, ''), password_hash, created_on`

func scanEmployee(row interface{ Scan(...any) error }) (*domain.Employee, error) {
	e := &domain.Employee{}
	var createdOn time.Time
	err := row.Scan(&e.ID, &e.Name, &e.Role, &e.Email, &e.Phone, &e.PasswordHash, &createdOn)
	if err != nil {
		return nil, err
	}
	e.CreatedOn = createdOn.Format("2006-01-02")
	return e, nil
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO bm_employees (name, role, email, phone, password_hash, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	e.CreatedOn = now.Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, e.Name, e.Role, e.Email, e.Phone, e.PasswordHash, now).Scan(&e.ID)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM bm_employees WHERE id = $1`
	return scanEmployee(r.db.QueryRowContext(ctx, query, id))
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM bm_employees WHERE email = $1`
	return scanEmployee(r.db.QueryRowContext(ctx, query, email))
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM bm_employees ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}
