package models

import "time"

// LegalArea categorizes the practice domain of a service order. The set is
// closed; requests carrying any other value are rejected.
type LegalArea string

// All practice areas handled by the office.
const (
	AreaTrabalhista      LegalArea = "Trabalhista"
	AreaCivel            LegalArea = "Cível"
	AreaPenal            LegalArea = "Penal"
	AreaTributario       LegalArea = "Tributário"
	AreaPrevidenciario   LegalArea = "Previdenciário"
	AreaCorporativo      LegalArea = "Corporativo"
	AreaDireitosAutorais LegalArea = "Direitos Autorais"
)

// LegalAreas lists every valid practice area.
func LegalAreas() []LegalArea {
	return []LegalArea{
		AreaTrabalhista,
		AreaCivel,
		AreaPenal,
		AreaTributario,
		AreaPrevidenciario,
		AreaCorporativo,
		AreaDireitosAutorais,
	}
}

// Valid reports whether the area belongs to the closed set.
func (a LegalArea) Valid() bool {
	for _, known := range LegalAreas() {
		if a == known {
			return true
		}
	}
	return false
}

// OSStatus describes the workflow stage of a service order. There is no
// enforced transition graph: any status may follow any other.
type OSStatus string

// All workflow stages of a service order.
const (
	StatusAberta         OSStatus = "Aberta"
	StatusEmAndamento    OSStatus = "Em Andamento"
	StatusAguardandoDocs OSStatus = "Aguardando Docs"
	StatusConcluida      OSStatus = "Concluída"
	StatusArquivada      OSStatus = "Arquivada"
)

// OSStatuses lists every valid workflow stage.
func OSStatuses() []OSStatus {
	return []OSStatus{
		StatusAberta,
		StatusEmAndamento,
		StatusAguardandoDocs,
		StatusConcluida,
		StatusArquivada,
	}
}

// Valid reports whether the status belongs to the closed set.
func (s OSStatus) Valid() bool {
	for _, known := range OSStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// Completed reports whether the status counts as a finished case for
// dashboard buckets and report metrics.
func (s OSStatus) Completed() bool {
	return s == StatusConcluida || s == StatusArquivada
}

// LogEntry is an immutable audit record attached to one service order.
// Entries are only ever prepended to an order's history; they are never
// edited or removed individually.
type LogEntry struct {
	ID     string `json:"id"`
	Date   string `json:"date"` // calendar date, yyyy-mm-dd
	User   string `json:"user"`
	Action string `json:"action"`
}

// ServiceOrder holds the structure for a legal case file (ordem de serviço).
// ClientName is a denormalized snapshot of the client's name at creation or
// edit time, not a reference into the clients collection.
type ServiceOrder struct {
	ID            string     `json:"id"`
	OSNumber      string     `json:"osNumber"`
	ClientName    string     `json:"clientName"`
	LegalArea     LegalArea  `json:"legalArea"`
	Description   string     `json:"description"`
	Strategy      string     `json:"strategy"`
	Methods       string     `json:"methods"`
	Deadlines     string     `json:"deadlines"`
	Status        OSStatus   `json:"status"`
	Responsible   string     `json:"responsible"`
	InternalNotes string     `json:"internalNotes"`
	Value         float64    `json:"value"`
	History       []LogEntry `json:"history"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Clone returns a deep copy of the order, including its history slice, so
// draft edits cannot reach the repository's copy.
func (o ServiceOrder) Clone() ServiceOrder {
	c := o
	c.History = make([]LogEntry, len(o.History))
	copy(c.History, o.History)
	return c
}
