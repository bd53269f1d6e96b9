package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lexflow/lexflow-api/advisory"
	"github.com/lexflow/lexflow-api/config"
	"github.com/lexflow/lexflow-api/models"
	"github.com/lexflow/lexflow-api/storage"
)

// Chat exported for testing purposes
type Chat struct {
	DB      storage.OrderRepository
	Advisor advisory.Advisor
}

// ChatHandler runs one advisory turn: the prompt, optionally bound to a
// service order, goes to the advisor and the reply comes back as a model
// message. The advisor absorbs its own failures, so this handler cannot
// surface one.
func (c Chat) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		config.ErrorStatus("failed to read prompt", http.StatusBadRequest, w, fmt.Errorf("prompt must not be empty"))
		return
	}

	var contextOrder *models.ServiceOrder
	if req.OrderID != "" {
		if order, ok := c.DB.Get(req.OrderID); ok {
			contextOrder = &order
		} else {
			zap.S().Debugf("chat context order not found: %v", req.OrderID)
		}
	}

	text := c.Advisor.Advise(r.Context(), req.Prompt, contextOrder)

	reply := models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      "model",
		Text:      text,
		Timestamp: time.Now(),
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(reply)
}
