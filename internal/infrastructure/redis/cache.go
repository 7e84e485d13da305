package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/retailchain/franchise-api/internal/domain/repository"
	"github.com/retailchain/franchise-api/pkg/config"
)

var _ repository.CacheRepository = (*Cache)(nil)

// Cache implementación del puerto CacheRepository sobre Redis.
// Los valores se serializan como JSON; un blob corrupto o incompatible cuenta
// como miss (se registra y se sigue contra la base de datos), nunca como
// fallo de la petición.
type Cache struct {
	client *goredis.Client
}

// NewCache construye el cliente Redis. No falla si Redis está caído: el
// adaptador degrada cada operación y la app funciona solo con la base de datos.
func NewCache(cfg config.RedisConfig) *Cache {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
	return &Cache{client: client}
}

// NewCacheWithClient construye el adaptador sobre un cliente existente (tests).
func NewCacheWithClient(client *goredis.Client) *Cache {
	return &Cache{client: client}
}

// Ping verifica la conexión a Redis.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close cierra la conexión.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Get deserializa el valor de key en dest. Devuelve (false, nil) en miss y en
// deserialización fallida; solo errores de conectividad se devuelven como error.
func (c *Cache) Get(key string, dest any) (bool, error) {
	val, err := c.client.Get(context.Background(), key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("valor cacheado corrupto, se trata como miss")
		return false, nil
	}
	return true, nil
}

// Set serializa value como JSON y lo guarda con el TTL dado.
func (c *Cache) Set(key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar valor para %s: %w", key, err)
	}
	if err := c.client.Set(context.Background(), key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete elimina la entrada de key. Borrar una key inexistente no es error.
func (c *Cache) Delete(key string) error {
	if err := c.client.Del(context.Background(), key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
