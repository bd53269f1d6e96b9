package reports_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexflow/lexflow-api/api/handlers/reports"
	"github.com/lexflow/lexflow-api/models"
)

func sampleOrders() []models.ServiceOrder {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []models.ServiceOrder{
		{
			ID:          "o1",
			OSNumber:    "OS-2025-1001",
			ClientName:  "Acme Ltda",
			LegalArea:   models.AreaCivel,
			Status:      models.StatusAberta,
			Responsible: "Dra. Ana Beatriz Castellucci",
			Value:       1500,
			CreatedAt:   day(2025, time.January, 10),
			UpdatedAt:   day(2025, time.January, 10),
		},
		{
			ID:          "o2",
			OSNumber:    "OS-2025-1002",
			ClientName:  "Mikael Santos",
			LegalArea:   models.AreaTrabalhista,
			Status:      models.StatusEmAndamento,
			Responsible: "Dr. Silva",
			Value:       2500.5,
			CreatedAt:   day(2025, time.February, 1),
			UpdatedAt:   day(2025, time.February, 5),
		},
		{
			ID:          "o3",
			OSNumber:    "OS-2025-1003",
			ClientName:  "Construtora Horizonte",
			LegalArea:   models.AreaTributario,
			Status:      models.StatusConcluida,
			Responsible: "Dra. Ana Beatriz Castellucci",
			Value:       8000,
			CreatedAt:   day(2025, time.January, 1),
			UpdatedAt:   day(2025, time.January, 11),
		},
		{
			ID:          "o4",
			OSNumber:    "OS-2024-1004",
			ClientName:  "Padaria do Bairro",
			LegalArea:   models.AreaCivel,
			Status:      models.StatusArquivada,
			Responsible: "Dr. Silva",
			Value:       0,
			CreatedAt:   day(2024, time.December, 1),
			UpdatedAt:   day(2024, time.December, 21),
		},
		{
			ID:          "o5",
			OSNumber:    "OS-2025-1005",
			ClientName:  "Acme Filial",
			LegalArea:   models.AreaPenal,
			Status:      models.StatusAguardandoDocs,
			Responsible: "Dra. Ana Beatriz Castellucci",
			Value:       300.25,
			CreatedAt:   day(2025, time.March, 3),
			UpdatedAt:   day(2025, time.March, 3),
		},
	}
}

func TestStats(t *testing.T) {
	s := reports.Stats(sampleOrders())

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 1, s.Open)
	assert.Equal(t, 2, s.InProgress)
	assert.Equal(t, 2, s.Completed)
}

func TestStatsEmpty(t *testing.T) {
	assert.Equal(t, reports.DashboardStats{}, reports.Stats(nil))
}

func TestFilterOrdersText(t *testing.T) {
	orders := sampleOrders()

	got := reports.FilterOrders(orders, reports.DashboardFilter{Text: "acme"})
	require.Len(t, got, 2)
	assert.Equal(t, "o1", got[0].ID)
	assert.Equal(t, "o5", got[1].ID)

	// OS number and responsible also match
	got = reports.FilterOrders(orders, reports.DashboardFilter{Text: "2024"})
	require.Len(t, got, 1)
	assert.Equal(t, "o4", got[0].ID)

	got = reports.FilterOrders(orders, reports.DashboardFilter{Text: "SILVA"})
	require.Len(t, got, 2)
}

func TestFilterOrdersSelectorsCombineWithAnd(t *testing.T) {
	orders := sampleOrders()

	got := reports.FilterOrders(orders, reports.DashboardFilter{
		Text:   "acme",
		Status: string(models.StatusAberta),
		Area:   reports.FilterAll,
	})
	require.Len(t, got, 1)
	assert.Equal(t, "o1", got[0].ID)

	got = reports.FilterOrders(orders, reports.DashboardFilter{
		Status: reports.FilterAll,
		Area:   string(models.AreaCivel),
	})
	require.Len(t, got, 2)

	got = reports.FilterOrders(orders, reports.DashboardFilter{Text: "nenhum"})
	assert.Empty(t, got)
}

func TestFilterReportDateBounds(t *testing.T) {
	orders := sampleOrders()
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	got := reports.FilterReport(orders, reports.ReportFilter{Start: &start, End: &end})
	require.Len(t, got, 3)
	assert.Equal(t, "o1", got[0].ID)
	assert.Equal(t, "o2", got[1].ID)
	assert.Equal(t, "o3", got[2].ID)
}

func TestFilterReportResponsibleSubstring(t *testing.T) {
	got := reports.FilterReport(sampleOrders(), reports.ReportFilter{Responsible: "castellucci"})
	require.Len(t, got, 3)

	got = reports.FilterReport(sampleOrders(), reports.ReportFilter{
		Responsible: "silva",
		Status:      string(models.StatusArquivada),
	})
	require.Len(t, got, 1)
	assert.Equal(t, "o4", got[0].ID)
}

func TestComputeMetrics(t *testing.T) {
	m := reports.ComputeMetrics(sampleOrders())

	assert.Equal(t, 5, m.TotalOS)
	assert.Equal(t, 2, m.CompletedOS)
	assert.InDelta(t, 12300.75, m.TotalValue, 0.001)
	// o3 resolved in 10 days, o4 in 20: average 15
	assert.Equal(t, 15, m.AvgResolutionDays)
}

func TestComputeMetricsNoCompleted(t *testing.T) {
	m := reports.ComputeMetrics(sampleOrders()[:2])

	assert.Equal(t, 2, m.TotalOS)
	assert.Equal(t, 0, m.CompletedOS)
	assert.Equal(t, 0, m.AvgResolutionDays)
}

func TestCSV(t *testing.T) {
	out := reports.CSV(sampleOrders()[:1])

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, reports.CSVHeader, lines[0])
	assert.Equal(t, `OS-2025-1001,"Acme Ltda",Cível,Aberta,Dra. Ana Beatriz Castellucci,10/01/2025,1500.00`, lines[1])
}

func TestCSVEmptySetIsHeaderOnly(t *testing.T) {
	assert.Equal(t, reports.CSVHeader, reports.CSV(nil))
}

func TestCSVFilename(t *testing.T) {
	now := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "relatorio_juridico_2025-03-10.csv", reports.CSVFilename(now))
}

func TestDocumentsTwoPerOrder(t *testing.T) {
	orders := sampleOrders()[:2]
	docs := reports.Documents(orders)

	require.Len(t, docs, 4)
	assert.Equal(t, "o1-doc1", docs[0].ID)
	assert.Equal(t, "Contrato de Honorários - Acme Ltda", docs[0].Title)
	assert.Equal(t, "Contrato", docs[0].Type)
	assert.Equal(t, "OS-2025-1001", docs[0].OSNumber)
	assert.Equal(t, orders[0].CreatedAt, docs[0].Date)

	assert.Equal(t, "o1-doc2", docs[1].ID)
	assert.Equal(t, "Procuração Ad Judicia - Acme Ltda", docs[1].Title)
	assert.Equal(t, "Procuração", docs[1].Type)

	assert.Equal(t, "o2-doc1", docs[2].ID)
	assert.Equal(t, "o2-doc2", docs[3].ID)
}

func TestDocumentsEmpty(t *testing.T) {
	assert.Empty(t, reports.Documents(nil))
}
