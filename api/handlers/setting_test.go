package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexflow/lexflow-api/api/handlers"
	"github.com/lexflow/lexflow-api/models"
	"github.com/lexflow/lexflow-api/storage"
)

func TestSetting_DisplayNameHandler(t *testing.T) {
	s := handlers.Setting{Settings: storage.NewSettings(newTestStore(t))}

	req, err := http.NewRequest("GET", "/api/v1/settings/display-name", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	http.HandlerFunc(s.DisplayNameHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, models.DefaultDisplayName, got["displayName"])
}

func TestSetting_UpdateDisplayNameHandler(t *testing.T) {
	settings := storage.NewSettings(newTestStore(t))
	s := handlers.Setting{Settings: settings}

	body := `{"displayName": "Dr. Rodrigo Moraes"}`
	req, err := http.NewRequest("PUT", "/api/v1/settings/display-name", strings.NewReader(body))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	http.HandlerFunc(s.UpdateDisplayNameHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Dr. Rodrigo Moraes", settings.DisplayName())
}

func TestSetting_UpdateDisplayNameHandlerEmpty(t *testing.T) {
	settings := storage.NewSettings(newTestStore(t))
	s := handlers.Setting{Settings: settings}

	req, err := http.NewRequest("PUT", "/api/v1/settings/display-name", strings.NewReader(`{"displayName": "  "}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	http.HandlerFunc(s.UpdateDisplayNameHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, models.DefaultDisplayName, settings.DisplayName())
}
