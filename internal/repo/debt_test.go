package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcancelado/fiapp/internal/models"
)

func TestDebtHistory_EmptyWhenNone(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)

	debts, err := r.DebtHistory(context.Background(), "local_1", "c1")
	require.NoError(t, err)
	assert.Empty(t, debts)
}

func TestDebtsByCustomer_UnionAcrossStores(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	term := 30
	require.NoError(t, r.CreateDebt(ctx, &models.Debt{StoreID: "local_a", CustomerID: "c1", Amount: 10}))
	require.NoError(t, r.CreateDebt(ctx, &models.Debt{StoreID: "local_b", CustomerID: "c1", Amount: 20, TermDays: &term}))
	require.NoError(t, r.CreateDebt(ctx, &models.Debt{StoreID: "local_a", CustomerID: "c2", Amount: 99}))

	debts, err := r.DebtsByCustomer(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, debts, 2)
	assert.Equal(t, "local_a", debts[0].StoreID)
	assert.Equal(t, "local_b", debts[1].StoreID)
	require.NotNil(t, debts[1].TermDays)
	assert.Equal(t, 30, *debts[1].TermDays)

	debts, err = r.DebtsByCustomer(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, debts)
}

func TestDebtHistory_ScopedToStore(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateDebt(ctx, &models.Debt{StoreID: "local_a", CustomerID: "c1", Amount: 10}))
	require.NoError(t, r.CreateDebt(ctx, &models.Debt{StoreID: "local_b", CustomerID: "c1", Amount: 20}))

	debts, err := r.DebtHistory(ctx, "local_a", "c1")
	require.NoError(t, err)
	require.Len(t, debts, 1)
	assert.Equal(t, 10.0, debts[0].Amount)
}
