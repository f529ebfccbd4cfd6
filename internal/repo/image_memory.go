package repo

import (
	"context"
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-api/internal/models"
)

type InMemoryImageRepository struct {
	mu     sync.RWMutex
	images []models.ProductImage
	nextID int
}

func NewInMemoryImageRepository() *InMemoryImageRepository {
	return &InMemoryImageRepository{
		images: []models.ProductImage{},
		nextID: 1,
	}
}

func (r *InMemoryImageRepository) Create(_ context.Context, productID int, filename string) (models.ProductImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	img := models.ProductImage{ID: r.nextID, ProductID: productID, Image: filename, CreatedAt: now, UpdatedAt: now}
	r.nextID++
	r.images = append(r.images, img)
	return img, nil
}

func (r *InMemoryImageRepository) GetByID(_ context.Context, id int) (models.ProductImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, img := range r.images {
		if img.ID == id {
			return img, nil
		}
	}
	return models.ProductImage{}, ErrImageNotFound
}

func (r *InMemoryImageRepository) ListByProduct(_ context.Context, productID int) ([]models.ProductImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.ProductImage{}
	for _, img := range r.images {
		if img.ProductID == productID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (r *InMemoryImageRepository) ListByProducts(_ context.Context, productIDs []int) (map[int][]models.ProductImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[int]bool, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = true
	}

	grouped := make(map[int][]models.ProductImage, len(productIDs))
	for _, img := range r.images {
		if wanted[img.ProductID] {
			grouped[img.ProductID] = append(grouped[img.ProductID], img)
		}
	}
	return grouped, nil
}

func (r *InMemoryImageRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, img := range r.images {
		if img.ID == id {
			r.images = append(r.images[:i], r.images[i+1:]...)
			return nil
		}
	}
	return ErrImageNotFound
}

func (r *InMemoryImageRepository) deleteByProduct(productID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.images[:0]
	for _, img := range r.images {
		if img.ProductID != productID {
			kept = append(kept, img)
		}
	}
	r.images = kept
}
