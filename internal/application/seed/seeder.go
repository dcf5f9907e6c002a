// Package seed carga los datos de referencia del dashboard: usuarios,
// clientes, facturas e ingresos mensuales.
package seed

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// Seeder orquesta la carga idempotente de los cuatro lotes.
//
// No hay transacción entre lotes: un fallo aborta lo que falta pero no
// revierte lo ya confirmado. Es una simplificación deliberada, registrada
// como limitación conocida; repetir SeedAll tras corregir el fallo deja el
// almacén completo sin duplicar nada.
//
// SeedAll no es seguro de ejecutar en paralelo consigo mismo contra el
// mismo almacén; los callers deben serializar las invocaciones.
type Seeder struct {
	users     repository.UserRepository
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	revenue   repository.RevenueRepository
	log       *logger.Logger
}

// NewSeeder construye el cargador.
func NewSeeder(
	users repository.UserRepository,
	customers repository.CustomerRepository,
	invoices repository.InvoiceRepository,
	revenue repository.RevenueRepository,
	log *logger.Logger,
) *Seeder {
	return &Seeder{users: users, customers: customers, invoices: invoices, revenue: revenue, log: log}
}

// SeedAll carga los lotes en orden estricto: usuarios, clientes, facturas,
// ingresos. Las facturas referencian clientes, así que los clientes deben
// existir antes. Cada lote usa upsert con conflicto ignorado: la segunda
// ejecución es un no-op.
func (s *Seeder) SeedAll(ctx context.Context) error {
	if err := s.seedUsers(ctx); err != nil {
		return s.wrapStoreErr(err, "sembrar usuarios")
	}
	if err := s.customers.UpsertBatch(ctx, customers); err != nil {
		return s.wrapStoreErr(err, "sembrar clientes")
	}
	if err := s.invoices.UpsertBatch(ctx, invoices); err != nil {
		return s.wrapStoreErr(err, "sembrar facturas")
	}
	if err := s.revenue.UpsertBatch(ctx, revenue); err != nil {
		return s.wrapStoreErr(err, "sembrar ingresos")
	}
	s.log.Info().
		Int("users", len(users)).
		Int("customers", len(customers)).
		Int("invoices", len(invoices)).
		Int("revenue", len(revenue)).
		Msg("datos de referencia cargados")
	return nil
}

// wrapStoreErr registra la causa real del fallo de un lote y devuelve hacia
// el caller un error con el nombre del lote sobre ErrStoreFailure: el detalle
// del almacén se queda en el log. Cancelaciones y violaciones de integridad
// pasan intactas para que el caller las distinga con errors.Is.
func (s *Seeder) wrapStoreErr(err error, op string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, domain.ErrOrphanInvoice) {
		s.log.Error().Err(err).Str("op", op).Msg("violación de integridad")
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Error().Err(err).Str("op", op).Msg("fallo del almacén")
	return fmt.Errorf("%s: %w", op, domain.ErrStoreFailure)
}

// seedUsers hashea cada password con bcrypt antes del upsert; el texto
// plano nunca llega al almacén.
func (s *Seeder) seedUsers(ctx context.Context) error {
	hashed := make([]*entity.User, 0, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash de password de %s: %w", u.Email, err)
		}
		hashed = append(hashed, &entity.User{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: string(hash),
		})
	}
	return s.users.UpsertBatch(ctx, hashed)
}
