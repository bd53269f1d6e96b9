package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/lexflow/lexflow-api/advisory"
	"github.com/lexflow/lexflow-api/api"
	"github.com/lexflow/lexflow-api/api/scheduler"
	"github.com/lexflow/lexflow-api/config"
	"github.com/lexflow/lexflow-api/models"
	"github.com/lexflow/lexflow-api/storage"
)

// advisoryTimeout bounds the one suspending route; every other operation is
// in-memory and returns immediately.
const advisoryTimeout = 35 * time.Second

// App stores the router, repositories and advisor, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	Store    *storage.Store
	Orders   storage.OrderRepository
	Clients  storage.ClientRepository
	Settings *storage.Settings
	Advisor  advisory.Advisor
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.Auth{Email: a.Config.AdminEmail, PasswordHash: a.Config.AdminPasswordHash}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	o := Order{DB: a.Orders, Settings: a.Settings}
	c := Client{DB: a.Clients}
	rep := Report{DB: a.Orders}
	d := Document{DB: a.Orders}
	chat := Chat{DB: a.Orders, Advisor: a.Advisor}
	s := Setting{Settings: a.Settings}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", http.HandlerFunc(m.CreateToken)).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/orders", api.Middleware(http.HandlerFunc(o.OrdersHandler))).Methods("GET")
	apiCreate.Handle("/orders/stats", api.Middleware(http.HandlerFunc(o.OrderStatsHandler))).Methods("GET")
	apiCreate.Handle("/order", api.Middleware(http.HandlerFunc(o.CreateOrderHandler))).Methods("POST")
	apiCreate.Handle("/order/{order_id}", api.Middleware(http.HandlerFunc(o.OrderByIDHandler))).Methods("GET")
	apiCreate.Handle("/order/{order_id}", api.Middleware(http.HandlerFunc(o.UpdateOrderHandler))).Methods("PUT")
	apiCreate.Handle("/order/{order_id}", api.Middleware(http.HandlerFunc(o.DeleteOrderHandler))).Methods("DELETE")

	apiCreate.Handle("/clients", api.Middleware(http.HandlerFunc(c.ClientsHandler))).Methods("GET")
	apiCreate.Handle("/client", api.Middleware(http.HandlerFunc(c.CreateClientHandler))).Methods("POST")
	apiCreate.Handle("/client/{client_id}", api.Middleware(http.HandlerFunc(c.UpsertClientHandler))).Methods("PUT")
	apiCreate.Handle("/client/{client_id}", api.Middleware(http.HandlerFunc(c.DeleteClientHandler))).Methods("DELETE")

	apiCreate.Handle("/reports", api.Middleware(http.HandlerFunc(rep.ReportHandler))).Methods("GET")
	apiCreate.Handle("/reports/export", api.Middleware(http.HandlerFunc(rep.ExportReportHandler))).Methods("GET")

	apiCreate.Handle("/documents", api.Middleware(http.HandlerFunc(d.DocumentsHandler))).Methods("GET")

	apiCreate.Handle("/settings/display-name", api.Middleware(http.HandlerFunc(s.DisplayNameHandler))).Methods("GET")
	apiCreate.Handle("/settings/display-name", api.Middleware(http.HandlerFunc(s.UpdateDisplayNameHandler))).Methods("PUT")

	apiCreate.Handle("/chat",
		api.TimeoutMiddleware(advisoryTimeout)(api.Middleware(http.HandlerFunc(chat.ChatHandler)))).Methods("POST")

	return r
}

// Initialize is invoked by main to open the data store, load the
// repositories, start the backup scheduler and create a router
func (a *App) Initialize() error {

	store, err := storage.NewStore(a.Config.DataDir)
	if err != nil {
		// without a writable data directory nothing can persist, kill the pod
		zap.S().With(err).Error("failed to open data store")
		return err
	}
	a.Store = store
	a.Orders = storage.NewOrderRepository(store)
	a.Clients = storage.NewClientRepository(store)
	a.Settings = storage.NewSettings(store)
	zap.S().Infow("lexflow-api loaded collections",
		"orders", len(a.Orders.All()),
		"clients", len(a.Clients.All()),
	)

	if a.Advisor == nil {
		adv, err := advisory.NewGemini(a.Config.GeminiAPIKey, a.Config.GeminiModel)
		if err != nil {
			zap.S().With(err).Error("failed to create advisory client")
			return err
		}
		a.Advisor = adv
	}

	scheduler.New(store, a.Config.BackupSchedule).Start()

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
