package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/org-directory/internal/domain"
)

// EmployeeRepository persists the roster as a flat, ordered table.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	ReplaceAll(ctx context.Context, employees []domain.Employee) error
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository builds the repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `
        SELECT iid, name, organization, organization_key, title, phone, mobile_phone
        FROM employees ORDER BY position`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Organization,
			&e.OrganizationKey,
			&e.Title,
			&e.Phone,
			&e.MobilePhone,
		); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// ReplaceAll swaps the table contents in one transaction.
func (r *employeeRepository) ReplaceAll(ctx context.Context, employees []domain.Employee) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM employees`); err != nil {
		return fmt.Errorf("clear employees: %w", err)
	}

	const insert = `
        INSERT INTO employees (id, position, iid, name, organization, organization_key, title, phone, mobile_phone)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	batch := &pgx.Batch{}
	for i, e := range employees {
		batch.Queue(insert,
			uuid.NewString(),
			i,
			e.ID,
			e.Name,
			e.Organization,
			e.OrganizationKey,
			e.Title,
			e.Phone,
			e.MobilePhone,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert employees: %w", err)
	}

	return tx.Commit(ctx)
}
