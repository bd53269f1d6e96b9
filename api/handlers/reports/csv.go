package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/lexflow/lexflow-api/models"
)

// CSVHeader is the fixed export header, in the office's locale.
const CSVHeader = `ID,Cliente,Área,Status,Responsável,Data Criação,Valor (R$)`

// CSV serializes the filtered rows for download: the header line plus one
// line per row. The client name is always double-quoted since names may
// contain commas; the creation date uses dd/mm/yyyy and the value two
// decimals.
func CSV(rows []models.ServiceOrder) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, CSVHeader)
	for _, o := range rows {
		lines = append(lines, strings.Join([]string{
			o.OSNumber,
			`"` + o.ClientName + `"`,
			string(o.LegalArea),
			string(o.Status),
			o.Responsible,
			o.CreatedAt.Format("02/01/2006"),
			fmt.Sprintf("%.2f", o.Value),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// CSVFilename stamps the download name with the given date.
func CSVFilename(now time.Time) string {
	return fmt.Sprintf("relatorio_juridico_%s.csv", now.Format("2006-01-02"))
}
