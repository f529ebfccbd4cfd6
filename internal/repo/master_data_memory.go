package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-api/internal/models"
)

type InMemoryMasterDataRepository struct {
	mu      sync.RWMutex
	records map[string][]models.MasterRecord
	nextID  map[string]int

	// inUse reports whether a product still references the record; set by
	// the product repository so deletes behave like a foreign key.
	inUse func(kind models.MasterKind, id int) bool
}

func NewInMemoryMasterDataRepository() *InMemoryMasterDataRepository {
	return &InMemoryMasterDataRepository{
		records: map[string][]models.MasterRecord{},
		nextID:  map[string]int{},
	}
}

func (r *InMemoryMasterDataRepository) List(_ context.Context, kind models.MasterKind) ([]models.MasterRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.MasterRecord, len(r.records[kind.Table]))
	copy(out, r.records[kind.Table])
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryMasterDataRepository) Create(_ context.Context, kind models.MasterKind, name string) (models.MasterRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID[kind.Table]++
	now := time.Now().UTC()
	rec := models.MasterRecord{Kind: kind, ID: r.nextID[kind.Table], Name: name, CreatedAt: now, UpdatedAt: now}
	r.records[kind.Table] = append(r.records[kind.Table], rec)
	return rec, nil
}

func (r *InMemoryMasterDataRepository) Update(_ context.Context, kind models.MasterKind, id int, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.records[kind.Table] {
		if rec.ID == id {
			r.records[kind.Table][i].Name = name
			r.records[kind.Table][i].UpdatedAt = time.Now().UTC()
		}
	}
	return nil
}

func (r *InMemoryMasterDataRepository) Delete(_ context.Context, kind models.MasterKind, id int) error {
	if r.inUse != nil && r.inUse(kind, id) {
		return ErrInvalidReference
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	recs := r.records[kind.Table]
	for i, rec := range recs {
		if rec.ID == id {
			r.records[kind.Table] = append(recs[:i], recs[i+1:]...)
			break
		}
	}
	return nil
}

func (r *InMemoryMasterDataRepository) Count(_ context.Context, kind models.MasterKind) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records[kind.Table]), nil
}

// lookup returns the record's name, or false when it does not exist.
func (r *InMemoryMasterDataRepository) lookup(kind models.MasterKind, id int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records[kind.Table] {
		if rec.ID == id {
			return rec.Name, true
		}
	}
	return "", false
}
