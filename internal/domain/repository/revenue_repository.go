package repository

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// RevenueRepository define el puerto de persistencia para Revenue.
type RevenueRepository interface {
	// List devuelve todos los puntos de ingreso mensual.
	List(ctx context.Context) ([]*entity.Revenue, error)
	// UpsertBatch inserta puntos con conflicto por month ignorado.
	UpsertBatch(ctx context.Context, points []*entity.Revenue) error
}
