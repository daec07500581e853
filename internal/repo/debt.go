package repo

import (
	"context"

	"github.com/jcancelado/fiapp/internal/models"
)

// CreateDebt appends one entry to the (store, customer) ledger. The
// customer is deliberately not checked against the store's register.
func (r *GormRepo) CreateDebt(ctx context.Context, d *models.Debt) error {
	return r.DB.WithContext(ctx).Create(d).Error
}

// DebtHistory returns the ledger for one customer in one store, oldest
// first. No entries is an empty slice, not an error.
func (r *GormRepo) DebtHistory(ctx context.Context, storeID, customerID string) ([]models.Debt, error) {
	var debts []models.Debt
	if err := r.DB.WithContext(ctx).
		Where("store_id = ? AND customer_id = ?", storeID, customerID).
		Order("id ASC").
		Find(&debts).Error; err != nil {
		return nil, err
	}
	return debts, nil
}

// DebtsByCustomer unions the ledgers of every store where the customer id
// appears. Cost is linear in the debt records of the whole system.
func (r *GormRepo) DebtsByCustomer(ctx context.Context, customerID string) ([]models.Debt, error) {
	var debts []models.Debt
	if err := r.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&debts).Error; err != nil {
		return nil, err
	}
	return debts, nil
}
