// seed carga los datos de referencia del dashboard (usuarios, clientes,
// facturas, ingresos) contra la base configurada. La carga es idempotente:
// ejecutarla dos veces deja los mismos conteos de filas.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/Facturacion-api/internal/application/seed"
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Facturacion-api/pkg/config"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	if err := postgres.RunMigrations(cfg.DB.DSN()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	seeder := seed.NewSeeder(
		postgres.NewUserRepository(pool),
		postgres.NewCustomerRepository(pool),
		postgres.NewInvoiceRepository(pool),
		postgres.NewRevenueRepository(pool),
		log,
	)

	if err := seeder.SeedAll(ctx); err != nil {
		log.Error().Err(err).Msg("carga de datos fallida")
		pool.Close()
		os.Exit(1)
	}
	log.Info().Msg("carga de datos completada")
}
