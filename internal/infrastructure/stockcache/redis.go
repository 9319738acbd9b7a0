package stockcache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/movement"
)

const stockKeyPrefix = "stock:"

var _ movement.StockIndex = (*RedisIndex)(nil)

// RedisIndex decora un StockIndex con caché read-through en Redis.
//
// La disponibilidad ya es una foto eventualmente consistente (el agregado se
// recalcula por fuera), así que un TTL corto no cambia el contrato del motor:
// sigue siendo una lectura puntual sin bloqueo. Si Redis no responde se cae
// directo al origen; la caché nunca convierte una validación en error.
type RedisIndex struct {
	client *redis.Client
	source movement.StockIndex
	ttl    time.Duration
}

// New construye el decorador. ttl <= 0 desactiva la escritura en caché.
func New(client *redis.Client, source movement.StockIndex, ttl time.Duration) *RedisIndex {
	return &RedisIndex{client: client, source: source, ttl: ttl}
}

// AvailableQuantity intenta la caché y cae al origen en miss o error.
func (c *RedisIndex) AvailableQuantity(productID, locationID string) (decimal.Decimal, error) {
	ctx := context.Background()
	key := stockKey(productID, locationID)

	// Miss, Redis caído o valor corrupto: se sigue al origen.
	val, err := c.client.Get(ctx, key).Result()
	if err == nil {
		if qty, perr := decimal.NewFromString(val); perr == nil {
			return qty, nil
		}
		// Valor corrupto: descartar y releer del origen
		_ = c.client.Del(ctx, key).Err()
	}

	qty, err := c.source.AvailableQuantity(productID, locationID)
	if err != nil {
		return decimal.Zero, err
	}
	if c.ttl > 0 {
		_ = c.client.Set(ctx, key, qty.String(), c.ttl).Err()
	}
	return qty, nil
}

// Invalidate borra la entrada de un par (producto, bodega); lo usan las
// herramientas de carga tras reescribir el agregado.
func (c *RedisIndex) Invalidate(productID, locationID string) error {
	return c.client.Del(context.Background(), stockKey(productID, locationID)).Err()
}

func stockKey(productID, locationID string) string {
	return stockKeyPrefix + productID + ":" + locationID
}
