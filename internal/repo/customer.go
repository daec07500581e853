package repo

import (
	"context"

	"github.com/jcancelado/fiapp/internal/models"
)

// RegisterCustomer adds a customer to one store. The same real-world
// person may be registered independently in any number of stores; each
// (store, customer) pair is its own record.
func (r *GormRepo) RegisterCustomer(ctx context.Context, c *models.Customer) error {
	tx := r.DB.WithContext(ctx).
		Where("store_id = ? AND customer_id = ?", c.StoreID, c.CustomerID).
		FirstOrCreate(c)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (r *GormRepo) ListCustomers(ctx context.Context, storeID string) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.DB.WithContext(ctx).Where("store_id = ?", storeID).Order("id ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
