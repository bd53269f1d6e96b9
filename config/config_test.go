package config

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	os.Setenv("DATA_DIR", "data")
	os.Setenv("PORT", "8081")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, "data", conf.DataDir)
	assert.Equal(t, "8081", conf.Port)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("error it borked", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"Response": {"Message": "error it borked", "Error": "bad request"}}`, rr.Body.String())
}
