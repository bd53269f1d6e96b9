// Package reports holds the read-only derivations over the record
// collections: dashboard filtering and counting, report aggregation with CSV
// serialization, and the synthetic document listing. Everything here is a
// pure function over a snapshot; nothing mutates the repositories.
package reports

import (
	"strings"

	"github.com/lexflow/lexflow-api/models"
)

// FilterAll is the sentinel selector value meaning "no filter".
const FilterAll = "ALL"

// DashboardFilter carries the dashboard's list filters. Text matches
// case-insensitively against client name, OS number, or responsible; Status
// and Area are exact-match selectors with the ALL sentinel. All criteria
// combine with AND.
type DashboardFilter struct {
	Text   string
	Status string
	Area   string
}

// DashboardStats buckets the order statuses for the overview cards. The
// in-progress bucket covers both active statuses, the completed bucket both
// terminal ones.
type DashboardStats struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// Stats counts the orders by status bucket.
func Stats(orders []models.ServiceOrder) DashboardStats {
	s := DashboardStats{Total: len(orders)}
	for _, o := range orders {
		switch {
		case o.Status == models.StatusAberta:
			s.Open++
		case o.Status == models.StatusEmAndamento || o.Status == models.StatusAguardandoDocs:
			s.InProgress++
		case o.Status.Completed():
			s.Completed++
		}
	}
	return s
}

// FilterOrders returns the orders matching the dashboard filter, preserving
// collection order.
func FilterOrders(orders []models.ServiceOrder, f DashboardFilter) []models.ServiceOrder {
	out := []models.ServiceOrder{}
	text := strings.ToLower(f.Text)
	for _, o := range orders {
		matchesText := text == "" ||
			strings.Contains(strings.ToLower(o.ClientName), text) ||
			strings.Contains(strings.ToLower(o.OSNumber), text) ||
			strings.Contains(strings.ToLower(o.Responsible), text)
		matchesStatus := f.Status == "" || f.Status == FilterAll || string(o.Status) == f.Status
		matchesArea := f.Area == "" || f.Area == FilterAll || string(o.LegalArea) == f.Area
		if matchesText && matchesStatus && matchesArea {
			out = append(out, o)
		}
	}
	return out
}
