package config

import (
	"encoding/json"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/lexflow/lexflow-api/logging"
	"github.com/lexflow/lexflow-api/models"
)

// Config holds the project config values
type Config struct {
	DataDir           string
	BaseURL           string
	Port              string
	GeminiAPIKey      string
	GeminiModel       string
	AdminEmail        string
	AdminPasswordHash string
	BackupSchedule    string
}

// New sets up all config related services
func New() *Config {

	// setup zap logger and replace default logger
	_ = zap.ReplaceGlobals(logging.New().Desugar())

	return &Config{
		DataDir:           os.Getenv("DATA_DIR"),
		BaseURL:           os.Getenv("BASE_URL"),
		Port:              os.Getenv("PORT"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       os.Getenv("GEMINI_MODEL"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		BackupSchedule:    os.Getenv("BACKUP_SCHEDULE"),
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.ErrorMessageResponse{Response: models.MessageError{
		Message: message,
		Error:   err.Error(),
	}})
	w.Write(b)
}
