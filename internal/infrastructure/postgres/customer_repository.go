package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// ListFiltered lista clientes cuyo nombre o email contiene term, orden por nombre.
func (r *CustomerRepo) ListFiltered(ctx context.Context, term string) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, email, image_url
		FROM customers
		WHERE (name ILIKE $1 OR email ILIKE $1)
		ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query, likePattern(term))
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListNames devuelve id+nombre de todos los clientes (selects de formularios).
func (r *CustomerRepo) ListNames(ctx context.Context) ([]repository.CustomerName, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM customers ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list customer names: %w", err)
	}
	defer rows.Close()

	var list []repository.CustomerName
	for rows.Next() {
		var n repository.CustomerName
		if err := rows.Scan(&n.ID, &n.Name); err != nil {
			return nil, fmt.Errorf("scan customer name: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// Count devuelve el total de clientes.
func (r *CustomerRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}

// UpsertBatch inserta clientes; conflictos por id se ignoran.
func (r *CustomerRepo) UpsertBatch(ctx context.Context, customers []*entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, image_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`
	for _, c := range customers {
		if _, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Email, c.ImageURL); err != nil {
			return fmt.Errorf("upsert customer %s: %w", c.ID, err)
		}
	}
	return nil
}
