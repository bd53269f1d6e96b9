package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lexflow/lexflow-api/api/handlers/reports"
	"github.com/lexflow/lexflow-api/config"
	"github.com/lexflow/lexflow-api/storage"
)

// Document exported for testing purposes
type Document struct {
	DB storage.OrderRepository
}

// DocumentsHandler returns the synthetic document listing derived from the
// order collection
func (d Document) DocumentsHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(reports.Documents(d.DB.All()))
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
