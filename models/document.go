package models

import "time"

// Document is a synthetic listing entry derived from a service order. Two
// documents are synthesized per order (the fee agreement and the power of
// attorney); no real files back them.
type Document struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Type     string    `json:"type"`
	Date     time.Time `json:"date"`
	OSNumber string    `json:"osNumber"`
}
