package repository

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// CustomerName par id+nombre para selects de formularios.
type CustomerName struct {
	ID   string
	Name string
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// ListFiltered devuelve los clientes cuyo nombre o email contiene term
	// (case-insensitive), ordenados por nombre ascendente. El predicado es
	// más estrecho que el de facturas: un cliente no tiene monto ni estado.
	ListFiltered(ctx context.Context, term string) ([]*entity.Customer, error)
	// ListNames devuelve id+nombre de todos los clientes, orden por nombre.
	ListNames(ctx context.Context) ([]CustomerName, error)
	// Count devuelve la cardinalidad total de clientes (solo conteo).
	Count(ctx context.Context) (int64, error)
	// UpsertBatch inserta clientes con conflicto por id ignorado.
	UpsertBatch(ctx context.Context, customers []*entity.Customer) error
}
