package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.RevenueRepository = (*RevenueRepo)(nil)

// RevenueRepo implementación de RevenueRepository (usable con pool o tx).
type RevenueRepo struct {
	q Querier
}

// NewRevenueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRevenueRepository(q Querier) *RevenueRepo {
	return &RevenueRepo{q: q}
}

// List devuelve todos los puntos de ingreso mensual.
func (r *RevenueRepo) List(ctx context.Context) ([]*entity.Revenue, error) {
	rows, err := r.q.Query(ctx, `SELECT month, amount FROM revenue`)
	if err != nil {
		return nil, fmt.Errorf("list revenue: %w", err)
	}
	defer rows.Close()

	var list []*entity.Revenue
	for rows.Next() {
		var p entity.Revenue
		if err := rows.Scan(&p.Month, &p.Amount); err != nil {
			return nil, fmt.Errorf("scan revenue: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpsertBatch inserta puntos de ingreso; conflictos por month se ignoran.
func (r *RevenueRepo) UpsertBatch(ctx context.Context, points []*entity.Revenue) error {
	query := `
		INSERT INTO revenue (month, amount)
		VALUES ($1, $2)
		ON CONFLICT (month) DO NOTHING`
	for _, p := range points {
		if _, err := r.q.Exec(ctx, query, p.Month, p.Amount); err != nil {
			return fmt.Errorf("upsert revenue %s: %w", p.Month, err)
		}
	}
	return nil
}
