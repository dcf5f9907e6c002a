package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidPage        = errors.New("número de página inválido")
	ErrUnauthorized       = errors.New("no autorizado")

	// ErrOrphanInvoice indica una factura cuyo customer_id no referencia
	// ningún cliente existente. Se reporta siempre como error explícito;
	// la fila nunca se omite en silencio.
	ErrOrphanInvoice = errors.New("factura sin cliente asociado")

	// ErrStoreFailure es la identidad estable que ven los callers cuando
	// falla el almacén. La causa real se registra en el log antes de
	// reemplazarla; el detalle interno no se expone hacia arriba.
	ErrStoreFailure = errors.New("operación de datos fallida")
)
