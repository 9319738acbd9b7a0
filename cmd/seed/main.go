// Seed de datos de desarrollo: un usuario por rol, dos bodegas con políticas
// contrastadas, un catálogo mínimo de productos y disponibilidad inicial.
// Idempotente a nivel práctico: los duplicados por unique constraint se
// reportan y se continúa.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/internal/infrastructure/stockcache"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewResourceStockRepository(pool)

	now := time.Now()

	// Usuarios, uno por rol. Password: cambiar fuera de desarrollo.
	users := []struct {
		email, role string
	}{
		{"admin@almacen.local", entity.RoleAdmin},
		{"bodega@almacen.local", entity.RoleBodeguero},
		{"consulta@almacen.local", entity.RoleConsulta},
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("almacen-dev-2024"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de password")
	}
	for _, u := range users {
		err := userRepo.Create(&entity.User{
			ID:           uuid.New().String(),
			Email:        u.email,
			PasswordHash: string(hash),
			Name:         u.email,
			Role:         u.role,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		switch {
		case err == domain.ErrEmailAlreadyExists:
			log.Info().Str("email", u.email).Msg("usuario ya existe, omitido")
		case err != nil:
			log.Fatal().Err(err).Str("email", u.email).Msg("crear usuario")
		default:
			log.Info().Str("email", u.email).Str("role", u.role).Msg("usuario creado")
		}
	}

	// Bodega principal: exige trazabilidad completa y reserva con borradores.
	// Bodega de tránsito: sin exigencias, sin reserva.
	principal := &entity.Location{
		ID:                    uuid.New().String(),
		Number:                "BOD-01",
		Name:                  "Bodega principal",
		RequirePrice:          true,
		RequireBatch:          true,
		RequireProductionDate: false,
		RequireExpirationDate: true,
		DraftMakesReservation: true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	transito := &entity.Location{
		ID:        uuid.New().String(),
		Number:    "BOD-02",
		Name:      "Bodega de tránsito",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, l := range []*entity.Location{principal, transito} {
		if err := locationRepo.Create(l); err != nil {
			if err == domain.ErrDuplicate {
				log.Info().Str("number", l.Number).Msg("bodega ya existe, omitida")
				continue
			}
			log.Fatal().Err(err).Str("number", l.Number).Msg("crear bodega")
		}
		log.Info().Str("number", l.Number).Msg("bodega creada")
	}

	products := []*entity.Product{
		{ID: uuid.New().String(), Number: "PRD-001", Name: "Harina de trigo 50kg", UnitMeasure: "saco", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Number: "PRD-002", Name: "Aceite vegetal 20L", UnitMeasure: "caneca", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Number: "PRD-003", Name: "Azúcar refinada 25kg", UnitMeasure: "bulto", CreatedAt: now, UpdatedAt: now},
	}
	for _, p := range products {
		if err := productRepo.Create(p); err != nil {
			if err == domain.ErrDuplicate {
				log.Info().Str("number", p.Number).Msg("producto ya existe, omitido")
				continue
			}
			log.Fatal().Err(err).Str("number", p.Number).Msg("crear producto")
		}
		log.Info().Str("number", p.Number).Msg("producto creado")
	}

	// Disponibilidad inicial en la bodega principal. Si hay caché Redis,
	// invalidar cada par reescrito para que la próxima lectura vea la carga.
	var cache *stockcache.RedisIndex
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		cache = stockcache.New(rdb, stockRepo, 0)
	}
	for i, p := range products {
		err := stockRepo.Upsert(&entity.ResourceStock{
			ProductID:         p.ID,
			LocationID:        principal.ID,
			AvailableQuantity: decimal.NewFromInt(int64(100 * (i + 1))),
		})
		if err != nil {
			log.Fatal().Err(err).Str("product", p.Number).Msg("cargar disponibilidad")
		}
		if cache != nil {
			if err := cache.Invalidate(p.ID, principal.ID); err != nil {
				log.Warn().Err(err).Str("product", p.Number).Msg("invalidar caché")
			}
		}
	}

	log.Info().Msg("seed completado")
}
