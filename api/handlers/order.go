package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/lexflow/lexflow-api/api/handlers/reports"
	"github.com/lexflow/lexflow-api/config"
	"github.com/lexflow/lexflow-api/editor"
	"github.com/lexflow/lexflow-api/models"
	"github.com/lexflow/lexflow-api/storage"
)

// Order exported for testing purposes
type Order struct {
	DB       storage.OrderRepository
	Settings *storage.Settings
}

// orderRequest carries the editable fields of a service order. Pointers
// distinguish "not sent" from zero values so a partial update keeps the
// draft's current values.
type orderRequest struct {
	ClientName    *string  `json:"clientName"`
	LegalArea     *string  `json:"legalArea"`
	Description   *string  `json:"description"`
	Strategy      *string  `json:"strategy"`
	Methods       *string  `json:"methods"`
	Deadlines     *string  `json:"deadlines"`
	Status        *string  `json:"status"`
	Responsible   *string  `json:"responsible"`
	InternalNotes *string  `json:"internalNotes"`
	Value         *float64 `json:"value"`
}

// apply assigns the submitted fields onto the draft. Enum and value checks
// happen here; the client-name check stays with the editor's save.
func (req orderRequest) apply(d *editor.Draft) error {
	if req.Status != nil {
		status := models.OSStatus(*req.Status)
		if !status.Valid() {
			return fmt.Errorf("status '%s' is not valid", *req.Status)
		}
		d.Order.Status = status
	}
	if req.LegalArea != nil {
		area := models.LegalArea(*req.LegalArea)
		if !area.Valid() {
			return fmt.Errorf("legal area '%s' is not valid", *req.LegalArea)
		}
		d.Order.LegalArea = area
	}
	if req.Value != nil {
		if *req.Value < 0 {
			return fmt.Errorf("value must not be negative")
		}
		d.Order.Value = *req.Value
	}
	if req.ClientName != nil {
		d.Order.ClientName = *req.ClientName
	}
	if req.Description != nil {
		d.Order.Description = *req.Description
	}
	if req.Strategy != nil {
		d.Order.Strategy = *req.Strategy
	}
	if req.Methods != nil {
		d.Order.Methods = *req.Methods
	}
	if req.Deadlines != nil {
		d.Order.Deadlines = *req.Deadlines
	}
	if req.InternalNotes != nil {
		d.Order.InternalNotes = *req.InternalNotes
	}
	if req.Responsible != nil {
		d.Order.Responsible = *req.Responsible
	}
	return nil
}

// OrdersHandler returns the order collection filtered for the dashboard list
func (o Order) OrdersHandler(w http.ResponseWriter, r *http.Request) {
	filter := reports.DashboardFilter{
		Text:   r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
		Area:   r.URL.Query().Get("area"),
	}

	dbResp := reports.FilterOrders(o.DB.All(), filter)

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// OrderStatsHandler returns the dashboard status buckets
func (o Order) OrderStatsHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(reports.Stats(o.DB.All()))
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// OrderByIDHandler returns an order by ID
func (o Order) OrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["order_id"]

	zap.S().Debugf("order_id: %v", orderID)

	order, ok := o.DB.Get(orderID)
	if !ok {
		config.ErrorStatus("failed to get order by ID", http.StatusNotFound, w, fmt.Errorf("no order with id %s", orderID))
		return
	}

	b, err := json.Marshal(order)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateOrderHandler opens a new draft, applies the submitted fields and
// saves it through the editor
func (o Order) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	currentUser := o.Settings.DisplayName()
	draft := editor.NewDraft(currentUser, time.Now())
	if err := req.apply(draft); err != nil {
		config.ErrorStatus("invalid order field", http.StatusBadRequest, w, err)
		return
	}

	order, err := draft.Save(currentUser, time.Now())
	if err != nil {
		config.ErrorStatus("failed to save order", http.StatusBadRequest, w, err)
		return
	}
	o.DB.Upsert(order)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// UpdateOrderHandler edits an existing order through the editor
func (o Order) UpdateOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["order_id"]

	existing, ok := o.DB.Get(orderID)
	if !ok {
		config.ErrorStatus("failed to get order by ID", http.StatusNotFound, w, fmt.Errorf("no order with id %s", orderID))
		return
	}

	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	draft := editor.EditDraft(existing)
	if err := req.apply(draft); err != nil {
		config.ErrorStatus("invalid order field", http.StatusBadRequest, w, err)
		return
	}

	order, err := draft.Save(o.Settings.DisplayName(), time.Now())
	if err != nil {
		config.ErrorStatus("failed to save order", http.StatusBadRequest, w, err)
		return
	}
	o.DB.Upsert(order)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(order)
}

// DeleteOrderHandler deletes an order by ID. Deleting an absent ID is a
// no-op; the confirmation gate lives in the client.
func (o Order) DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["order_id"]

	o.DB.Delete(orderID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Order deleted successfully",
	})
}
