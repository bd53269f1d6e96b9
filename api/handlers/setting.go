package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/lexflow/lexflow-api/config"
	"github.com/lexflow/lexflow-api/storage"
)

// Setting exported for testing purposes
type Setting struct {
	Settings *storage.Settings
}

type displayNameResponse struct {
	DisplayName string `json:"displayName"`
}

// DisplayNameHandler returns the acting user's display name
func (s Setting) DisplayNameHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(displayNameResponse{DisplayName: s.Settings.DisplayName()})
}

// UpdateDisplayNameHandler stores a new display name; an empty trimmed name
// is rejected and the current name kept
func (s Setting) UpdateDisplayNameHandler(w http.ResponseWriter, r *http.Request) {
	var req displayNameResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		config.ErrorStatus("failed to update display name", http.StatusBadRequest, w, fmt.Errorf("display name must not be empty"))
		return
	}

	s.Settings.SetDisplayName(name)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(displayNameResponse{DisplayName: name})
}
