package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexflow/lexflow-api/models"
	"github.com/lexflow/lexflow-api/storage"
)

func testOrder(id, osNumber string) models.ServiceOrder {
	now := time.Date(2024, time.October, 1, 12, 0, 0, 0, time.UTC)
	return models.ServiceOrder{
		ID:          id,
		OSNumber:    osNumber,
		ClientName:  "Acme Ltda",
		LegalArea:   models.AreaTributario,
		Status:      models.StatusAberta,
		Responsible: "Dr. Rodrigo Moraes",
		History:     []models.LogEntry{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestOrderRepositorySeedsWhenStoreEmpty(t *testing.T) {
	repo := storage.NewOrderRepository(newTestStore(t))

	assert.Equal(t, models.InitialServiceOrders(), repo.All())
}

func TestOrderRepositoryUpsertPrependsNew(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(storage.OrdersKey, []models.ServiceOrder{}))
	repo := storage.NewOrderRepository(store)

	repo.Upsert(testOrder("a", "OS-2024-100"))
	repo.Upsert(testOrder("b", "OS-2024-101"))

	all := repo.All()
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
}

func TestOrderRepositoryUpsertReplacesInPlace(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(storage.OrdersKey, []models.ServiceOrder{
		testOrder("a", "OS-2024-100"),
		testOrder("b", "OS-2024-101"),
		testOrder("c", "OS-2024-102"),
	}))
	repo := storage.NewOrderRepository(store)

	updated := testOrder("b", "OS-2024-101")
	updated.Value = 1234.56
	repo.Upsert(updated)

	all := repo.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, 1234.56, all[1].Value)
}

func TestOrderRepositoryUpsertIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(storage.OrdersKey, []models.ServiceOrder{}))
	repo := storage.NewOrderRepository(store)

	order := testOrder("a", "OS-2024-100")
	repo.Upsert(order)
	repo.Upsert(order)

	all := repo.All()
	require.Len(t, all, 1)
	assert.Equal(t, order, all[0])
}

func TestOrderRepositoryDeleteAbsentIsNoOp(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(storage.OrdersKey, []models.ServiceOrder{testOrder("a", "OS-2024-100")}))
	repo := storage.NewOrderRepository(store)

	repo.Delete("missing")

	assert.Len(t, repo.All(), 1)
}

func TestOrderRepositoryDelete(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(storage.OrdersKey, []models.ServiceOrder{
		testOrder("a", "OS-2024-100"),
		testOrder("b", "OS-2024-101"),
	}))
	repo := storage.NewOrderRepository(store)

	repo.Delete("a")

	all := repo.All()
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].ID)
}

// Every mutation persists the whole collection, so a fresh repository over
// the same store sees the mutated state.
func TestOrderRepositoryPersistsEachMutation(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(storage.OrdersKey, []models.ServiceOrder{}))

	repo := storage.NewOrderRepository(store)
	repo.Upsert(testOrder("a", "OS-2024-100"))
	repo.Upsert(testOrder("b", "OS-2024-101"))
	repo.Delete("a")

	reloaded := storage.NewOrderRepository(store)
	all := reloaded.All()
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].ID)
}

func TestOrderRepositoryAllReturnsCopies(t *testing.T) {
	store := newTestStore(t)
	order := testOrder("a", "OS-2024-100")
	order.History = []models.LogEntry{{ID: "h1", Date: "2024-10-01", User: "Dr. Rodrigo", Action: "OS Criada"}}
	require.NoError(t, store.Save(storage.OrdersKey, []models.ServiceOrder{order}))
	repo := storage.NewOrderRepository(store)

	snapshot := repo.All()
	snapshot[0].History[0].Action = "mutated"
	snapshot[0].ClientName = "mutated"

	got, ok := repo.Get("a")
	require.True(t, ok)
	assert.Equal(t, "OS Criada", got.History[0].Action)
	assert.Equal(t, "Acme Ltda", got.ClientName)
}
