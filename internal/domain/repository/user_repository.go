package repository

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	// FindByEmail obtiene un usuario por email; nil si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Create persiste un usuario nuevo; ErrEmailAlreadyExists si el email ya está.
	Create(ctx context.Context, user *entity.User) error
	// UpsertBatch inserta usuarios con conflicto por id ignorado. Los
	// usuarios llegan aquí ya con el password hasheado.
	UpsertBatch(ctx context.Context, users []*entity.User) error
}
