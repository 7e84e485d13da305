package usecase_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/retailchain/franchise-api/internal/domain/entity"
	"github.com/retailchain/franchise-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia y caché
// ──────────────────────────────────────────────────────────────────────────────

var errStoreDown = errors.New("base de datos no disponible")

type fakeFranchiseRepo struct {
	seq   int64
	items map[int64]*entity.Franchise
	err   error // si no es nil, toda operación falla con este error
}

var _ repository.FranchiseRepository = (*fakeFranchiseRepo)(nil)

func newFakeFranchiseRepo() *fakeFranchiseRepo {
	return &fakeFranchiseRepo{items: map[int64]*entity.Franchise{}}
}

func (r *fakeFranchiseRepo) Create(f *entity.Franchise) error {
	if r.err != nil {
		return r.err
	}
	r.seq++
	f.ID = r.seq
	cp := *f
	r.items[f.ID] = &cp
	return nil
}

func (r *fakeFranchiseRepo) GetByID(id int64) (*entity.Franchise, error) {
	if r.err != nil {
		return nil, r.err
	}
	f, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFranchiseRepo) Update(f *entity.Franchise) error {
	if r.err != nil {
		return r.err
	}
	cp := *f
	r.items[f.ID] = &cp
	return nil
}

func (r *fakeFranchiseRepo) List() ([]*entity.Franchise, error) {
	if r.err != nil {
		return nil, r.err
	}
	var list []*entity.Franchise
	for i := int64(1); i <= r.seq; i++ {
		if f, ok := r.items[i]; ok {
			cp := *f
			list = append(list, &cp)
		}
	}
	return list, nil
}

type fakeBranchRepo struct {
	seq   int64
	items map[int64]*entity.Branch
	err   error
}

var _ repository.BranchRepository = (*fakeBranchRepo)(nil)

func newFakeBranchRepo() *fakeBranchRepo {
	return &fakeBranchRepo{items: map[int64]*entity.Branch{}}
}

func (r *fakeBranchRepo) Create(b *entity.Branch) error {
	if r.err != nil {
		return r.err
	}
	r.seq++
	b.ID = r.seq
	cp := *b
	r.items[b.ID] = &cp
	return nil
}

func (r *fakeBranchRepo) GetByID(id int64) (*entity.Branch, error) {
	if r.err != nil {
		return nil, r.err
	}
	b, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBranchRepo) Update(b *entity.Branch) error {
	if r.err != nil {
		return r.err
	}
	// franchise_id es inmutable: se conserva el valor original
	existing := r.items[b.ID]
	cp := *b
	cp.FranchiseID = existing.FranchiseID
	r.items[b.ID] = &cp
	return nil
}

func (r *fakeBranchRepo) ListByFranchise(franchiseID int64) ([]*entity.Branch, error) {
	if r.err != nil {
		return nil, r.err
	}
	list := []*entity.Branch{}
	for i := int64(1); i <= r.seq; i++ {
		if b, ok := r.items[i]; ok && b.FranchiseID == franchiseID {
			cp := *b
			list = append(list, &cp)
		}
	}
	return list, nil
}

type fakeProductRepo struct {
	seq   int64
	items map[int64]*entity.Product
	err   error
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[int64]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if r.err != nil {
		return r.err
	}
	r.seq++
	p.ID = r.seq
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if r.err != nil {
		return r.err
	}
	// branch_id es inmutable: se conserva el valor original
	existing := r.items[p.ID]
	cp := *p
	cp.BranchID = existing.BranchID
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	if r.err != nil {
		return r.err
	}
	delete(r.items, id)
	return nil
}

// FindMaxStockByBranches replica la semántica del query agrupado: máximo por
// sucursal, conservando empates.
func (r *fakeProductRepo) FindMaxStockByBranches(branchIDs []int64) ([]*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	maxByBranch := map[int64]int{}
	inSet := map[int64]bool{}
	for _, id := range branchIDs {
		inSet[id] = true
	}
	for _, p := range r.items {
		if !inSet[p.BranchID] {
			continue
		}
		if cur, ok := maxByBranch[p.BranchID]; !ok || p.Stock > cur {
			maxByBranch[p.BranchID] = p.Stock
		}
	}
	var list []*entity.Product
	for i := int64(1); i <= r.seq; i++ {
		p, ok := r.items[i]
		if !ok || !inSet[p.BranchID] {
			continue
		}
		if p.Stock == maxByBranch[p.BranchID] {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

// fakeCache caché en memoria que serializa JSON igual que el adaptador real.
// down simula caída total de Redis; ops registra la secuencia de operaciones
// para verificar el orden invalidar → repoblar.
type fakeCache struct {
	data map[string][]byte
	ttls map[string]time.Duration
	ops  []string
	down bool
}

var _ repository.CacheRepository = (*fakeCache)(nil)

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *fakeCache) Get(key string, dest any) (bool, error) {
	c.ops = append(c.ops, "get:"+key)
	if c.down {
		return false, errors.New("caché no disponible")
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (c *fakeCache) Set(key string, value any, ttl time.Duration) error {
	c.ops = append(c.ops, "set:"+key)
	if c.down {
		return errors.New("caché no disponible")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar: %w", err)
	}
	c.data[key] = raw
	c.ttls[key] = ttl
	return nil
}

func (c *fakeCache) Delete(key string) error {
	c.ops = append(c.ops, "delete:"+key)
	if c.down {
		return errors.New("caché no disponible")
	}
	delete(c.data, key)
	delete(c.ttls, key)
	return nil
}
