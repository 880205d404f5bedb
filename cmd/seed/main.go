// Seed de desarrollo: usuario admin, bodega principal con dos ubicaciones y
// un catálogo mínimo de productos. Idempotente a nivel de duplicados: si un
// recurso ya existe se omite y se continúa.
package main

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/almacen-api/pkg/config"
	"github.com/tu-usuario/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo, warehouseRepo)
	stockUC := inventory.NewStockUseCase(ledgerRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, stockUC)

	// Usuario administrador
	if _, err := authUC.Signup(dto.SignupRequest{
		LoginID:  "admin01",
		Email:    "admin@almacen.local",
		Password: "Almacen#2024",
		Name:     "Administrador",
	}); err != nil && !errors.Is(err, domain.ErrLoginIDExists) {
		log.Fatal().Err(err).Msg("seed usuario admin")
	}
	log.Info().Str("login_id", "admin01").Msg("usuario admin listo")

	// Bodega principal con dos ubicaciones
	warehouse, err := warehouseUC.Create(dto.CreateWarehouseRequest{
		Name:      "Bodega Principal",
		ShortCode: "WH",
		Address:   "Calle 1 #2-34",
	})
	if err != nil {
		if !errors.Is(err, domain.ErrDuplicate) {
			log.Fatal().Err(err).Msg("seed bodega")
		}
		log.Info().Msg("bodega principal ya existe")
	} else {
		for _, loc := range []dto.CreateLocationRequest{
			{Name: "Estantería 1", ShortCode: "LOC1", WarehouseID: warehouse.ID},
			{Name: "Estantería 2", ShortCode: "LOC2", WarehouseID: warehouse.ID},
		} {
			if _, err := locationUC.Create(loc); err != nil && !errors.Is(err, domain.ErrDuplicate) {
				log.Fatal().Err(err).Str("location", loc.ShortCode).Msg("seed ubicación")
			}
		}
		log.Info().Str("short_code", warehouse.ShortCode).Msg("bodega principal creada")
	}

	// Catálogo mínimo (solo si la tabla está vacía; los productos no tienen
	// constraint de unicidad por nombre)
	existing, err := productRepo.List(1, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("seed productos: listar")
	}
	if len(existing) > 0 {
		log.Info().Msg("catálogo ya poblado, seed completado")
		return
	}
	products := []dto.CreateProductRequest{
		{Name: "Caja de tornillos 4x40", Description: "Caja x100", PerUnitCost: decimal.NewFromFloat(3.50)},
		{Name: "Cinta de embalaje", Description: "Rollo 48mm x 100m", PerUnitCost: decimal.NewFromFloat(1.20)},
		{Name: "Pallet europeo", Description: "Madera 120x80", PerUnitCost: decimal.NewFromFloat(9.90)},
	}
	for _, p := range products {
		if _, err := productUC.Create(p); err != nil {
			log.Fatal().Err(err).Str("product", p.Name).Msg("seed producto")
		}
	}
	log.Info().Int("products", len(products)).Msg("seed completado")
}
