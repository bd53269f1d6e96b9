package reports

import (
	"math"
	"strings"
	"time"

	"github.com/lexflow/lexflow-api/models"
)

// ReportFilter carries the managerial report filters. Start and End bound
// the order creation date inclusively; either may be nil for an open end.
// Responsible is a case-insensitive substring match.
type ReportFilter struct {
	Start       *time.Time
	End         *time.Time
	Area        string
	Status      string
	Responsible string
}

// Metrics are the aggregates shown above the report table. AvgResolutionDays
// is computed over completed rows only and is 0 when there are none.
type Metrics struct {
	TotalOS           int     `json:"totalOS"`
	CompletedOS       int     `json:"completedOS"`
	TotalValue        float64 `json:"totalValue"`
	AvgResolutionDays int     `json:"avgResolutionDays"`
}

// FilterReport returns the orders matching the report filter, preserving
// collection order.
func FilterReport(orders []models.ServiceOrder, f ReportFilter) []models.ServiceOrder {
	out := []models.ServiceOrder{}
	responsible := strings.ToLower(f.Responsible)
	for _, o := range orders {
		afterStart := f.Start == nil || !o.CreatedAt.Before(*f.Start)
		beforeEnd := f.End == nil || !o.CreatedAt.After(*f.End)
		matchesArea := f.Area == "" || f.Area == FilterAll || string(o.LegalArea) == f.Area
		matchesStatus := f.Status == "" || f.Status == FilterAll || string(o.Status) == f.Status
		matchesResponsible := responsible == "" ||
			strings.Contains(strings.ToLower(o.Responsible), responsible)
		if afterStart && beforeEnd && matchesArea && matchesStatus && matchesResponsible {
			out = append(out, o)
		}
	}
	return out
}

// ComputeMetrics aggregates the filtered rows. Resolution time is the span
// from creation to last update in days, averaged over completed rows and
// rounded to the nearest whole day.
func ComputeMetrics(rows []models.ServiceOrder) Metrics {
	m := Metrics{TotalOS: len(rows)}
	var resolutionSum float64
	for _, o := range rows {
		m.TotalValue += o.Value
		if o.Status.Completed() {
			m.CompletedOS++
			resolutionSum += o.UpdatedAt.Sub(o.CreatedAt).Hours() / 24
		}
	}
	if m.CompletedOS > 0 {
		m.AvgResolutionDays = int(math.Round(resolutionSum / float64(m.CompletedOS)))
	}
	return m
}
