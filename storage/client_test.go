package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexflow/lexflow-api/models"
	"github.com/lexflow/lexflow-api/storage"
)

func TestClientRepositorySeedsWhenStoreEmpty(t *testing.T) {
	repo := storage.NewClientRepository(newTestStore(t))

	assert.Equal(t, models.InitialClients(), repo.All())
}

func TestClientRepositoryUpsertAndDelete(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(storage.ClientsKey, []models.Client{}))
	repo := storage.NewClientRepository(store)

	repo.Upsert(models.Client{ID: "c1", Name: "Acme Ltda", Type: models.ClientPessoaJuridica})
	repo.Upsert(models.Client{ID: "c2", Name: "Mikael Santos", Type: models.ClientPessoaFisica})

	all := repo.All()
	require.Len(t, all, 2)
	assert.Equal(t, "c2", all[0].ID)

	// replace in place keeps the position
	repo.Upsert(models.Client{ID: "c2", Name: "Mikael S. Santos", Type: models.ClientPessoaFisica})
	all = repo.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Mikael S. Santos", all[0].Name)

	repo.Delete("c2")
	repo.Delete("missing")
	all = repo.All()
	require.Len(t, all, 1)
	assert.Equal(t, "c1", all[0].ID)
}

func TestClientRepositoryPersistsEachMutation(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(storage.ClientsKey, []models.Client{}))

	repo := storage.NewClientRepository(store)
	repo.Upsert(models.Client{ID: "c1", Name: "Acme Ltda", Type: models.ClientPessoaJuridica})

	reloaded := storage.NewClientRepository(store)
	all := reloaded.All()
	require.Len(t, all, 1)
	assert.Equal(t, "c1", all[0].ID)
}

func TestSettingsDefaultAndUpdate(t *testing.T) {
	store := newTestStore(t)

	settings := storage.NewSettings(store)
	assert.Equal(t, models.DefaultDisplayName, settings.DisplayName())

	settings.SetDisplayName("Dr. Rodrigo Moraes")
	assert.Equal(t, "Dr. Rodrigo Moraes", settings.DisplayName())

	reloaded := storage.NewSettings(store)
	assert.Equal(t, "Dr. Rodrigo Moraes", reloaded.DisplayName())
}
