package repo

import (
	"context"

	"github.com/jcancelado/fiapp/internal/models"
)

// CreateStore inserts s under its caller-supplied store id.
func (r *GormRepo) CreateStore(ctx context.Context, s *models.Store) error {
	tx := r.DB.WithContext(ctx).Where("store_id = ?", s.StoreID).FirstOrCreate(s)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (r *GormRepo) GetStore(ctx context.Context, storeID string) (*models.Store, error) {
	var store models.Store
	if err := r.DB.WithContext(ctx).Where("store_id = ?", storeID).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// ListStoresByOwner filters all stores on owner equality. There is no
// secondary lookup structure beyond the column index; fine at this scale.
func (r *GormRepo) ListStoresByOwner(ctx context.Context, ownerID string) ([]models.Store, error) {
	var stores []models.Store
	if err := r.DB.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id ASC").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// RenameStore updates the store name. The owner is immutable after
// creation, so the name is the only mutable field.
func (r *GormRepo) RenameStore(ctx context.Context, storeID, name string) (*models.Store, error) {
	var store models.Store
	if err := r.DB.WithContext(ctx).Where("store_id = ?", storeID).First(&store).Error; err != nil {
		return nil, err
	}
	store.Name = name
	if err := r.DB.WithContext(ctx).Save(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *GormRepo) DeleteStore(ctx context.Context, storeID string) error {
	return r.DB.WithContext(ctx).Where("store_id = ?", storeID).Delete(&models.Store{}).Error
}
