// Package editor implements the detail-editor lifecycle for service orders:
// a draft is either new (no backing record) or editing an existing record,
// takes arbitrary field assignments, and validates only on save. Saving
// finalizes the draft with a fresh audit entry; the caller hands the result
// to the repository.
package editor

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lexflow/lexflow-api/models"
)

// ErrClientNameRequired rejects a save with an empty (trimmed) client name.
var ErrClientNameRequired = errors.New("preencha o nome do cliente")

// Draft is the working copy of one service order. Order is mutated freely
// until Save; the repository's copy is untouched until then.
type Draft struct {
	Order   models.ServiceOrder
	editing bool
}

// NewDraft starts a draft for a record that does not exist yet. The
// identifier is unix-millis plus a random base36 suffix and the OS number
// embeds the current year with a random 4-digit segment, matching the
// numbering of previously issued orders. Collisions are probabilistically
// negligible; no uniqueness check is made against persisted identifiers.
func NewDraft(currentUser string, now time.Time) *Draft {
	return &Draft{
		Order: models.ServiceOrder{
			ID:          newDraftID(now),
			OSNumber:    fmt.Sprintf("OS-%d-%d", now.Year(), 1000+rand.Intn(9000)),
			LegalArea:   models.AreaCivel,
			Status:      models.StatusAberta,
			Responsible: currentUser,
			Value:       0,
			History:     []models.LogEntry{},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// EditDraft starts a draft over an existing record. The record is deep
// copied, history included, so in-progress edits cannot corrupt the
// repository's copy.
func EditDraft(existing models.ServiceOrder) *Draft {
	return &Draft{Order: existing.Clone(), editing: true}
}

// Editing reports whether the draft backs an existing record.
func (d *Draft) Editing() bool {
	return d.editing
}

// Save validates the draft and finalizes it: one new log entry is prepended
// to the history (created vs. updated depending on the draft state) and
// updatedAt is set. On a validation error the draft is left untouched so the
// editor keeps its state.
func (d *Draft) Save(currentUser string, now time.Time) (models.ServiceOrder, error) {
	if strings.TrimSpace(d.Order.ClientName) == "" {
		return models.ServiceOrder{}, ErrClientNameRequired
	}

	action := "OS Criada"
	if d.editing {
		action = "OS Atualizada"
	}
	entry := models.LogEntry{
		ID:     uuid.New().String(),
		Date:   now.Format("2006-01-02"),
		User:   currentUser,
		Action: action,
	}

	final := d.Order.Clone()
	final.History = append([]models.LogEntry{entry}, final.History...)
	final.UpdatedAt = now
	return final, nil
}

func newDraftID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + randomSuffix(9)
}

func randomSuffix(n int) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}
