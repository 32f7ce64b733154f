package corpus

import (
	"sync/atomic"

	"github.com/moltscope/moltscope/internal/domain"
)

// Holder publishes the current snapshot to concurrent readers. Reloads are
// applied as an atomic swap of a fully built snapshot; readers see either
// the old index or the new one, never a partially updated state.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// NewHolder creates an empty holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Current returns the active snapshot, or ErrSnapshotNotLoaded before the
// first successful load.
func (h *Holder) Current() (*Snapshot, error) {
	s := h.current.Load()
	if s == nil {
		return nil, domain.ErrSnapshotNotLoaded
	}
	return s, nil
}

// Swap replaces the active snapshot.
func (h *Holder) Swap(s *Snapshot) {
	h.current.Store(s)
}

// Loaded reports whether a snapshot has been published.
func (h *Holder) Loaded() bool {
	return h.current.Load() != nil
}
