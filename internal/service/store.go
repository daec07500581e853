package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/jcancelado/fiapp/internal/cache"
	"github.com/jcancelado/fiapp/internal/events"
	"github.com/jcancelado/fiapp/internal/logging"
	"github.com/jcancelado/fiapp/internal/models"
	"github.com/jcancelado/fiapp/internal/repo"
	"github.com/jcancelado/fiapp/internal/search"
	"github.com/jcancelado/fiapp/internal/transport"
)

const debtCacheTTL = 5 * time.Minute

// StoreService is the use-case layer over stores, inventory, customers
// and the debt ledger. Redis and Search are optional collaborators; nil
// disables the cross-store debt cache and the inventory index.
type StoreService struct {
	Repo   *repo.GormRepo
	Events EventPublisher
	Redis  *redis.Client
	Search *search.Service
}

func debtCacheKey(customerID string) string {
	return "deudas:cliente:" + customerID
}

// --- Locales ---

func (s *StoreService) CreateStore(ctx context.Context, name, ownerID, storeID string) (*models.Store, error) {
	if name == "" || ownerID == "" || storeID == "" {
		return nil, fmt.Errorf("%w: name, owner and store id are required", ErrInvalidArgument)
	}

	store := models.Store{StoreID: storeID, Name: name, OwnerID: ownerID}
	if err := s.Repo.CreateStore(ctx, &store); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: store id taken", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("create store: %w", err)
	}

	logging.FromContext(ctx).Info("store_created", "store_id", storeID, "owner_id", ownerID)
	return &store, nil
}

func (s *StoreService) GetStore(ctx context.Context, storeID string) (*models.Store, error) {
	store, err := s.Repo.GetStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: store", ErrNotFound)
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return store, nil
}

func (s *StoreService) ListStoresByOwner(ctx context.Context, ownerID string) ([]models.Store, error) {
	return s.Repo.ListStoresByOwner(ctx, ownerID)
}

func (s *StoreService) RenameStore(ctx context.Context, storeID, name string) (*models.Store, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	store, err := s.Repo.RenameStore(ctx, storeID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: store", ErrNotFound)
		}
		return nil, fmt.Errorf("rename store: %w", err)
	}
	return store, nil
}

func (s *StoreService) DeleteStore(ctx context.Context, storeID string) error {
	return s.Repo.DeleteStore(ctx, storeID)
}

// --- Inventario ---

func (s *StoreService) CreateProduct(ctx context.Context, storeID string, req transport.CreateProductRequest) (*models.Product, error) {
	if req.ProductID == "" || req.Nombre == "" {
		return nil, fmt.Errorf("%w: product id and name are required", ErrInvalidArgument)
	}
	if req.Precio < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidArgument)
	}

	product := models.Product{
		StoreID:   storeID,
		ProductID: req.ProductID,
		Name:      req.Nombre,
		Price:     req.Precio,
		Stock:     req.Stock,
	}
	if err := s.Repo.CreateProduct(ctx, &product); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: product id taken in this store", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.indexProduct(ctx, &product)
	return &product, nil
}

func (s *StoreService) ListProducts(ctx context.Context, storeID string, offset, limit int) (int64, []models.Product, error) {
	return s.Repo.ListProducts(ctx, storeID, offset, limit)
}

func (s *StoreService) PatchProduct(ctx context.Context, storeID, productID string, req transport.PatchProductRequest) (*models.Product, error) {
	if req.Precio != nil && *req.Precio < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidArgument)
	}

	product, err := s.Repo.PatchProduct(ctx, req, storeID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product", ErrNotFound)
		}
		return nil, fmt.Errorf("patch product: %w", err)
	}

	s.indexProduct(ctx, product)
	return product, nil
}

func (s *StoreService) DeleteProduct(ctx context.Context, storeID, productID string) error {
	if err := s.Repo.DeleteProduct(ctx, storeID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product", ErrNotFound)
		}
		return fmt.Errorf("delete product: %w", err)
	}

	if s.Search != nil {
		if err := s.Search.DeleteProduct(ctx, storeID, productID); err != nil {
			logging.FromContext(ctx).Warn("search_delete_failed", "error", err)
		}
	}
	return nil
}

// SearchProducts queries the inventory index of one store.
func (s *StoreService) SearchProducts(ctx context.Context, storeID, query string, from, size int) (int64, []models.Product, error) {
	if s.Search == nil {
		return 0, nil, fmt.Errorf("%w: search backend not configured", ErrInvalidArgument)
	}
	return s.Search.Search(ctx, storeID, query, from, size)
}

// --- Clientes ---

func (s *StoreService) RegisterCustomer(ctx context.Context, storeID string, req transport.RegisterCustomerRequest) (*models.Customer, error) {
	if req.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrInvalidArgument)
	}

	customer := models.Customer{
		StoreID:    storeID,
		CustomerID: req.CustomerID,
		Name:       req.Nombre,
		Phone:      req.Telefono,
	}
	if err := s.Repo.RegisterCustomer(ctx, &customer); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: customer already registered in this store", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("register customer: %w", err)
	}
	return &customer, nil
}

func (s *StoreService) ListCustomers(ctx context.Context, storeID string) ([]models.Customer, error) {
	return s.Repo.ListCustomers(ctx, storeID)
}

// --- Deudas ---

// RecordDebt appends a ledger entry. The customer is not required to be
// registered in the store first.
func (s *StoreService) RecordDebt(ctx context.Context, storeID, customerID string, amount float64, termDays *int) (*models.Debt, error) {
	if storeID == "" || customerID == "" {
		return nil, fmt.Errorf("%w: store and customer id are required", ErrInvalidArgument)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	}

	debt := models.Debt{
		StoreID:    storeID,
		CustomerID: customerID,
		Amount:     amount,
		TermDays:   termDays,
	}
	if err := s.Repo.CreateDebt(ctx, &debt); err != nil {
		return nil, fmt.Errorf("record debt: %w", err)
	}

	if s.Redis != nil {
		if err := cache.Delete(ctx, s.Redis, debtCacheKey(customerID)); err != nil {
			logging.FromContext(ctx).Warn("debt_cache_invalidate_failed", "error", err)
		}
	}

	if s.Events != nil {
		event := map[string]any{
			"type":       "debt_recorded",
			"local_id":   storeID,
			"cliente_id": customerID,
			"monto":      amount,
		}
		if err := s.Events.PublishEvent(ctx, events.TopicDebts, customerID, event); err != nil {
			logging.FromContext(ctx).Warn("event_publish_failed", "topic", events.TopicDebts, "error", err)
		}
	}

	return &debt, nil
}

func (s *StoreService) DebtHistory(ctx context.Context, storeID, customerID string) ([]models.Debt, error) {
	return s.Repo.DebtHistory(ctx, storeID, customerID)
}

// AllDebtsForCustomer unions the customer's ledgers across every store.
// The scan is linear in all debt records, so the result is cached briefly
// when redis is wired in.
func (s *StoreService) AllDebtsForCustomer(ctx context.Context, customerID string) ([]models.Debt, error) {
	key := debtCacheKey(customerID)

	if s.Redis != nil {
		var cached []models.Debt
		hit, err := cache.Get(ctx, s.Redis, key, &cached)
		if err != nil {
			logging.FromContext(ctx).Warn("debt_cache_read_failed", "error", err)
		} else if hit {
			return cached, nil
		}
	}

	debts, err := s.Repo.DebtsByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("aggregate debts: %w", err)
	}

	if s.Redis != nil {
		if err := cache.Set(ctx, s.Redis, key, debts, debtCacheTTL); err != nil {
			logging.FromContext(ctx).Warn("debt_cache_write_failed", "error", err)
		}
	}

	return debts, nil
}

func (s *StoreService) indexProduct(ctx context.Context, p *models.Product) {
	if s.Search == nil {
		return
	}
	if err := s.Search.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Warn("search_index_failed", "error", err)
	}
}
