package reports

import "github.com/lexflow/lexflow-api/models"

// Documents synthesizes the document listing from the order collection:
// exactly two entries per order, the fee agreement and the power of
// attorney, each inheriting the order's creation date and OS number. These
// are illustrative placeholders, not uploaded files.
func Documents(orders []models.ServiceOrder) []models.Document {
	docs := make([]models.Document, 0, 2*len(orders))
	for _, o := range orders {
		docs = append(docs,
			models.Document{
				ID:       o.ID + "-doc1",
				Title:    "Contrato de Honorários - " + o.ClientName,
				Type:     "Contrato",
				Date:     o.CreatedAt,
				OSNumber: o.OSNumber,
			},
			models.Document{
				ID:       o.ID + "-doc2",
				Title:    "Procuração Ad Judicia - " + o.ClientName,
				Type:     "Procuração",
				Date:     o.CreatedAt,
				OSNumber: o.OSNumber,
			},
		)
	}
	return docs
}
