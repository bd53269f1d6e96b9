package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lexflow/lexflow-api/api/handlers/reports"
	"github.com/lexflow/lexflow-api/config"
	"github.com/lexflow/lexflow-api/storage"
)

// Report exported for testing purposes
type Report struct {
	DB storage.OrderRepository
}

// reportFilterFromQuery parses the shared report filters. Dates use
// yyyy-mm-dd; the end bound covers its whole day.
func reportFilterFromQuery(r *http.Request) (reports.ReportFilter, error) {
	filter := reports.ReportFilter{
		Area:        r.URL.Query().Get("area"),
		Status:      r.URL.Query().Get("status"),
		Responsible: r.URL.Query().Get("responsible"),
	}
	if start := r.URL.Query().Get("start"); start != "" {
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			return filter, fmt.Errorf("invalid start date %q", start)
		}
		filter.Start = &t
	}
	if end := r.URL.Query().Get("end"); end != "" {
		t, err := time.Parse("2006-01-02", end)
		if err != nil {
			return filter, fmt.Errorf("invalid end date %q", end)
		}
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.End = &t
	}
	return filter, nil
}

// ReportHandler returns the filtered rows with their aggregates
func (rep Report) ReportHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := reportFilterFromQuery(r)
	if err != nil {
		config.ErrorStatus("failed to parse report filters", http.StatusBadRequest, w, err)
		return
	}

	rows := reports.FilterReport(rep.DB.All(), filter)

	response := map[string]interface{}{
		"data":    rows,
		"metrics": reports.ComputeMetrics(rows),
	}

	b, err := json.Marshal(response)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ExportReportHandler serves the filtered rows as a CSV attachment
func (rep Report) ExportReportHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := reportFilterFromQuery(r)
	if err != nil {
		config.ErrorStatus("failed to parse report filters", http.StatusBadRequest, w, err)
		return
	}

	rows := reports.FilterReport(rep.DB.All(), filter)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, reports.CSVFilename(time.Now())))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(reports.CSV(rows)))
}
