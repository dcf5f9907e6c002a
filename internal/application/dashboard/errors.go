package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// wrapStoreErr aplica la política de propagación de fallos del almacén:
// la causa real se registra aquí, en la frontera, y hacia el caller viaja
// un error con nombre de operación estable sobre ErrStoreFailure.
//
// Cancelaciones y violaciones de integridad pasan intactas: el caller debe
// poder distinguirlas con errors.Is.
func wrapStoreErr(log *logger.Logger, err error, op string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, domain.ErrOrphanInvoice) {
		log.Error().Err(err).Str("op", op).Msg("violación de integridad")
		return err
	}
	log.Error().Err(err).Str("op", op).Msg("fallo del almacén")
	return fmt.Errorf("%s: %w", op, domain.ErrStoreFailure)
}
