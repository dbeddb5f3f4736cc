package editor

import "github.com/rezonia/invoice-composer/internal/model"

// History is an undo/redo stack of invoice snapshots. Snapshots are cheap
// because mutations copy line items instead of sharing storage.
//
// History is not safe for concurrent use; the editing surface is a single
// thread of control.
type History struct {
	past    []model.Invoice
	current model.Invoice
	future  []model.Invoice
}

// NewHistory starts a history at the given initial snapshot.
func NewHistory(initial model.Invoice) *History {
	return &History{current: initial}
}

// Current returns the latest snapshot.
func (h *History) Current() model.Invoice {
	return h.current
}

// Push records a new snapshot, discarding any redo branch.
func (h *History) Push(inv model.Invoice) {
	h.past = append(h.past, h.current)
	h.current = inv
	h.future = nil
}

// Undo steps back one snapshot. Returns false at the start of history.
func (h *History) Undo() bool {
	if len(h.past) == 0 {
		return false
	}
	h.future = append(h.future, h.current)
	h.current = h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	return true
}

// Redo steps forward after an Undo. Returns false with nothing to redo.
func (h *History) Redo() bool {
	if len(h.future) == 0 {
		return false
	}
	h.past = append(h.past, h.current)
	h.current = h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	return true
}
