package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcancelado/fiapp/internal/events"
	"github.com/jcancelado/fiapp/internal/transport"
)

func newTestStoreService(t *testing.T) *StoreService {
	t.Helper()
	return &StoreService{Repo: newTestRepo(t)}
}

func TestStoreService_CreateStore(t *testing.T) {
	t.Parallel()

	svc := newTestStoreService(t)
	ctx := context.Background()

	store, err := svc.CreateStore(ctx, "Tienda Ana", "u1", "local_u1_1")
	require.NoError(t, err)
	assert.Equal(t, "Tienda Ana", store.Name)
	assert.Equal(t, "u1", store.OwnerID)

	_, err = svc.CreateStore(ctx, "Otra", "u2", "local_u1_1")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = svc.CreateStore(ctx, "", "u1", "local_u1_2")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestStoreService_ListStoresByOwner(t *testing.T) {
	t.Parallel()

	svc := newTestStoreService(t)
	ctx := context.Background()

	_, err := svc.CreateStore(ctx, "A", "u1", "local_u1_1")
	require.NoError(t, err)
	_, err = svc.CreateStore(ctx, "B", "u1", "local_u1_2")
	require.NoError(t, err)
	_, err = svc.CreateStore(ctx, "C", "u2", "local_u2_1")
	require.NoError(t, err)

	stores, err := svc.ListStoresByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "local_u1_1", stores[0].StoreID)

	stores, err = svc.ListStoresByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, stores)
}

func TestStoreService_GetRenameDelete(t *testing.T) {
	t.Parallel()

	svc := newTestStoreService(t)
	ctx := context.Background()

	_, err := svc.CreateStore(ctx, "Tienda Ana", "u1", "local_u1_1")
	require.NoError(t, err)

	store, err := svc.GetStore(ctx, "local_u1_1")
	require.NoError(t, err)
	assert.Equal(t, "Tienda Ana", store.Name)

	renamed, err := svc.RenameStore(ctx, "local_u1_1", "Tienda Nueva")
	require.NoError(t, err)
	assert.Equal(t, "Tienda Nueva", renamed.Name)
	assert.Equal(t, "u1", renamed.OwnerID)

	_, err = svc.RenameStore(ctx, "local_u1_1", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.RenameStore(ctx, "missing", "X")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.DeleteStore(ctx, "local_u1_1"))
	_, err = svc.GetStore(ctx, "local_u1_1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreService_ProductValidation(t *testing.T) {
	t.Parallel()

	svc := newTestStoreService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, "local_1", transport.CreateProductRequest{ProductID: "", Nombre: "arroz"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.CreateProduct(ctx, "local_1", transport.CreateProductRequest{ProductID: "p1", Nombre: "arroz", Precio: -1})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.CreateProduct(ctx, "local_1", transport.CreateProductRequest{ProductID: "p1", Nombre: "arroz", Precio: 3.5, Stock: 10})
	require.NoError(t, err)

	_, err = svc.CreateProduct(ctx, "local_1", transport.CreateProductRequest{ProductID: "p1", Nombre: "dup"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	bad := -2.0
	_, err = svc.PatchProduct(ctx, "local_1", "p1", transport.PatchProductRequest{Precio: &bad})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.PatchProduct(ctx, "local_1", "missing", transport.PatchProductRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreService_PatchProduct_PartialUpdate(t *testing.T) {
	t.Parallel()

	svc := newTestStoreService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, "local_1", transport.CreateProductRequest{
		ProductID: "p1", Nombre: "arroz", Precio: 3.5, Stock: 10,
	})
	require.NoError(t, err)

	stock := uint(99)
	updated, err := svc.PatchProduct(ctx, "local_1", "p1", transport.PatchProductRequest{Stock: &stock})
	require.NoError(t, err)

	assert.Equal(t, uint(99), updated.Stock)
	assert.Equal(t, "arroz", updated.Name)
	assert.Equal(t, 3.5, updated.Price)
}

func TestStoreService_RegisterCustomer(t *testing.T) {
	t.Parallel()

	svc := newTestStoreService(t)
	ctx := context.Background()

	customer, err := svc.RegisterCustomer(ctx, "local_1", transport.RegisterCustomerRequest{
		CustomerID: "c1", Nombre: "Ana", Telefono: "555",
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", customer.CustomerID)

	_, err = svc.RegisterCustomer(ctx, "local_1", transport.RegisterCustomerRequest{CustomerID: "c1"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// The same person can be a customer of a second store.
	_, err = svc.RegisterCustomer(ctx, "local_2", transport.RegisterCustomerRequest{CustomerID: "c1"})
	require.NoError(t, err)

	_, err = svc.RegisterCustomer(ctx, "local_1", transport.RegisterCustomerRequest{CustomerID: ""})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestStoreService_RecordDebt(t *testing.T) {
	t.Parallel()

	svc := newTestStoreService(t)
	ctx := context.Background()

	_, err := svc.RecordDebt(ctx, "local_1", "c1", 0, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.RecordDebt(ctx, "", "c1", 10, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// The customer does not have to be registered in the store.
	term := 15
	debt, err := svc.RecordDebt(ctx, "local_1", "c1", 25.5, &term)
	require.NoError(t, err)
	assert.Equal(t, 25.5, debt.Amount)
	require.NotNil(t, debt.TermDays)
	assert.Equal(t, 15, *debt.TermDays)
	assert.False(t, debt.CreatedAt.IsZero())
}

func TestStoreService_RecordDebt_PublishesEvent(t *testing.T) {
	t.Parallel()

	pub := &recordingPublisher{}
	svc := &StoreService{Repo: newTestRepo(t), Events: pub}

	_, err := svc.RecordDebt(context.Background(), "local_1", "c1", 10, nil)
	require.NoError(t, err)

	require.Len(t, pub.topics, 1)
	assert.Equal(t, events.TopicDebts, pub.topics[0])
	assert.Equal(t, "debt_recorded", pub.events[0]["type"])
	assert.Equal(t, "c1", pub.events[0]["cliente_id"])
}

func TestStoreService_AllDebtsForCustomer_Union(t *testing.T) {
	t.Parallel()

	svc := newTestStoreService(t)
	ctx := context.Background()

	_, err := svc.RecordDebt(ctx, "local_a", "c1", 10, nil)
	require.NoError(t, err)
	_, err = svc.RecordDebt(ctx, "local_b", "c1", 20, nil)
	require.NoError(t, err)
	_, err = svc.RecordDebt(ctx, "local_a", "c2", 99, nil)
	require.NoError(t, err)

	debts, err := svc.AllDebtsForCustomer(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, debts, 2)
	assert.Equal(t, 10.0, debts[0].Amount)
	assert.Equal(t, 20.0, debts[1].Amount)

	debts, err = svc.AllDebtsForCustomer(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, debts)
}

func TestStoreService_DebtHistory(t *testing.T) {
	t.Parallel()

	svc := newTestStoreService(t)
	ctx := context.Background()

	history, err := svc.DebtHistory(ctx, "local_1", "c1")
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = svc.RecordDebt(ctx, "local_1", "c1", 10, nil)
	require.NoError(t, err)
	_, err = svc.RecordDebt(ctx, "local_2", "c1", 20, nil)
	require.NoError(t, err)

	history, err = svc.DebtHistory(ctx, "local_1", "c1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 10.0, history[0].Amount)
}
