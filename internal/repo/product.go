package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/jcancelado/fiapp/internal/models"
	"github.com/jcancelado/fiapp/internal/transport"
)

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	tx := r.DB.WithContext(ctx).
		Where("store_id = ? AND product_id = ?", p.StoreID, p.ProductID).
		FirstOrCreate(p)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (r *GormRepo) GetProduct(ctx context.Context, storeID, productID string) (*models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) ListProducts(ctx context.Context, storeID string, offset, limit int) (int64, []models.Product, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("store_id = ?", storeID).
		Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Product
	if err := r.DB.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("id ASC").Offset(offset).Limit(limit).
		Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

// PatchProduct applies the non-nil fields of req; everything else keeps
// its stored value.
func (r *GormRepo) PatchProduct(ctx context.Context, req transport.PatchProductRequest, storeID, productID string) (*models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		First(&product).Error
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		product.Name = *req.Nombre
	}
	if req.Precio != nil {
		product.Price = *req.Precio
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := r.DB.WithContext(ctx).Save(&product).Error; err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, storeID, productID string) error {
	res := r.DB.WithContext(ctx).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
