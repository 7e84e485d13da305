package repository

import "time"

// CacheRepository define el puerto de caché clave/valor con TTL.
// La caché es advisory: una implementación puede fallar por conectividad y el
// caso de uso decide degradar (fallback a la base de datos), nunca fallar la
// petición por culpa de la caché.
type CacheRepository interface {
	// Get deserializa el valor en dest. Devuelve (false, nil) en miss;
	// un valor corrupto también cuenta como miss, no como error.
	Get(key string, dest any) (bool, error)
	Set(key string, value any, ttl time.Duration) error
	Delete(key string) error
}
