package usecase

import (
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/retailchain/franchise-api/internal/application/dto"
	"github.com/retailchain/franchise-api/internal/domain/entity"
	"github.com/retailchain/franchise-api/internal/domain/repository"
)

const (
	franchiseCacheKeyPrefix = "franchise:"
	franchiseCacheTTL       = 10 * time.Minute
)

// FranchiseUseCase casos de uso para franquicias con cache-aside sobre Redis.
// La caché es un acelerador opcional: si no está disponible, todo sigue
// funcionando contra la base de datos y solo se omite el cacheo.
type FranchiseUseCase struct {
	repo  repository.FranchiseRepository
	cache repository.CacheRepository
}

// NewFranchiseUseCase construye el caso de uso.
func NewFranchiseUseCase(repo repository.FranchiseRepository, cache repository.CacheRepository) *FranchiseUseCase {
	return &FranchiseUseCase{repo: repo, cache: cache}
}

func franchiseCacheKey(id int64) string {
	return franchiseCacheKeyPrefix + strconv.FormatInt(id, 10)
}

// Create crea una franquicia y puebla la caché para el nuevo ID (best-effort).
func (uc *FranchiseUseCase) Create(in dto.CreateFranchiseRequest) (*dto.FranchiseResponse, error) {
	now := time.Now()
	franchise := &entity.Franchise{
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(franchise); err != nil {
		return nil, err
	}
	log.Info().Int64("franchise_id", franchise.ID).Msg("franquicia creada")
	uc.cacheSet(franchise)
	return toFranchiseResponse(franchise), nil
}

// Rename actualiza el nombre y luego invalida y repuebla la entrada de caché.
// El orden es delete + set, no un overwrite: si el proceso muere entre ambos
// pasos, el peor caso es un miss que se resuelve contra la base de datos,
// nunca una lectura vieja.
func (uc *FranchiseUseCase) Rename(id int64, in dto.UpdateFranchiseNameRequest) (*dto.FranchiseResponse, error) {
	franchise, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if franchise == nil {
		return nil, nil
	}
	franchise.Name = in.Name
	franchise.UpdatedAt = time.Now()
	if err := uc.repo.Update(franchise); err != nil {
		return nil, err
	}
	log.Info().Int64("franchise_id", id).Str("name", in.Name).Msg("franquicia renombrada")
	if err := uc.cache.Delete(franchiseCacheKey(id)); err != nil {
		log.Warn().Err(err).Int64("franchise_id", id).Msg("no se pudo invalidar la caché")
	}
	uc.cacheSet(franchise)
	return toFranchiseResponse(franchise), nil
}

// GetByID intenta primero la caché; en hit responde sin tocar la base de
// datos, en miss lee la base de datos y repuebla la entrada con su TTL.
func (uc *FranchiseUseCase) GetByID(id int64) (*dto.FranchiseResponse, error) {
	key := franchiseCacheKey(id)
	var cached entity.Franchise
	hit, err := uc.cache.Get(key, &cached)
	if err != nil {
		// Caché caída: se degrada a leer la base de datos, nunca falla la petición.
		log.Warn().Err(err).Str("key", key).Msg("caché no disponible, leyendo de la base de datos")
	}
	if hit {
		log.Debug().Str("key", key).Msg("cache hit")
		return toFranchiseResponse(&cached), nil
	}
	franchise, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if franchise == nil {
		return nil, nil
	}
	uc.cacheSet(franchise)
	return toFranchiseResponse(franchise), nil
}

// List lee siempre de la base de datos; los listados no se cachean.
func (uc *FranchiseUseCase) List() ([]dto.FranchiseResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.FranchiseResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFranchiseResponse(f))
	}
	return items, nil
}

// cacheSet puebla la caché con TTL fijo. Un fallo se registra y se ignora:
// la siguiente lectura repuebla la entrada (self-healing del cache-aside).
func (uc *FranchiseUseCase) cacheSet(f *entity.Franchise) {
	if err := uc.cache.Set(franchiseCacheKey(f.ID), f, franchiseCacheTTL); err != nil {
		log.Warn().Err(err).Int64("franchise_id", f.ID).Msg("no se pudo poblar la caché")
	}
}

func toFranchiseResponse(f *entity.Franchise) *dto.FranchiseResponse {
	if f == nil {
		return nil
	}
	return &dto.FranchiseResponse{
		ID:        f.ID,
		Name:      f.Name,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
