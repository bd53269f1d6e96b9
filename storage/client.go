package storage

import (
	"sync"

	"go.uber.org/zap"

	"github.com/lexflow/lexflow-api/models"
)

// ClientRepository contains the methods to use with the client collection.
// It is the sole mutator of the clients key in the store.
type ClientRepository interface {
	All() []models.Client
	Get(id string) (models.Client, bool)
	Upsert(client models.Client)
	Delete(id string)
}

type clientRepository struct {
	mu      sync.Mutex
	store   *Store
	clients []models.Client
}

// NewClientRepository loads the client collection from the store, falling
// back to the compiled-in seed dataset when nothing usable is persisted.
func NewClientRepository(store *Store) ClientRepository {
	r := &clientRepository{store: store}
	if !store.Load(ClientsKey, &r.clients) || r.clients == nil {
		r.clients = models.InitialClients()
	}
	return r
}

func (r *clientRepository) All() []models.Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Client, len(r.clients))
	copy(out, r.clients)
	return out
}

func (r *clientRepository) Get(id string) (models.Client, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

// Upsert replaces the client with the same ID in place, preserving its
// position, or prepends it when absent.
func (r *clientRepository) Upsert(client models.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.clients {
		if c.ID == client.ID {
			r.clients[i] = client
			r.persist()
			return
		}
	}
	r.clients = append([]models.Client{client}, r.clients...)
	r.persist()
}

// Delete removes the client with the given ID; it is a no-op when absent.
func (r *clientRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.clients {
		if c.ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			r.persist()
			return
		}
	}
}

func (r *clientRepository) persist() {
	if err := r.store.Save(ClientsKey, r.clients); err != nil {
		zap.S().Errorw("failed to persist clients", "error", err)
	}
}
