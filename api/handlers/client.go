package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lexflow/lexflow-api/config"
	"github.com/lexflow/lexflow-api/models"
	"github.com/lexflow/lexflow-api/storage"
)

// Client exported for testing purposes
type Client struct {
	DB storage.ClientRepository
}

func validateClient(c models.Client) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("client name must not be empty")
	}
	if c.Type != "" && !c.Type.Valid() {
		return fmt.Errorf("client type '%s' is not valid", c.Type)
	}
	return nil
}

// ClientsHandler returns the client collection
func (c Client) ClientsHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(c.DB.All())
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateClientHandler creates a new client with a generated ID
func (c Client) CreateClientHandler(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	client.ID = uuid.New().String()
	if client.Type == "" {
		client.Type = models.ClientPessoaFisica
	}
	if err := validateClient(client); err != nil {
		config.ErrorStatus("invalid client", http.StatusBadRequest, w, err)
		return
	}

	c.DB.Upsert(client)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(client)
}

// UpsertClientHandler stores the submitted client under the path ID,
// replacing it in place when it exists and prepending it otherwise
func (c Client) UpsertClientHandler(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["client_id"]

	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	client.ID = clientID
	if client.Type == "" {
		client.Type = models.ClientPessoaFisica
	}
	if err := validateClient(client); err != nil {
		config.ErrorStatus("invalid client", http.StatusBadRequest, w, err)
		return
	}

	c.DB.Upsert(client)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(client)
}

// DeleteClientHandler deletes a client by ID; deleting an absent ID is a
// no-op
func (c Client) DeleteClientHandler(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["client_id"]

	c.DB.Delete(clientID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Client deleted successfully",
	})
}
