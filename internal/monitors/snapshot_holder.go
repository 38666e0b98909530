package monitors

import (
	"sync/atomic"

	"call-monitor/internal/models"
)

// SnapshotHolder owns the single current Snapshot. Publication is one atomic
// pointer store, so a reader sees either the fully-old or fully-new snapshot,
// never a mix. Readers load the pointer once and compute against that
// instance for the duration of their query.
type SnapshotHolder struct {
	current atomic.Pointer[models.Snapshot]
}

func NewSnapshotHolder() *SnapshotHolder {
	holder := &SnapshotHolder{}
	holder.current.Store(models.NewEmptySnapshot())
	return holder
}

// Current returns the currently published snapshot. Never nil.
func (h *SnapshotHolder) Current() *models.Snapshot {
	return h.current.Load()
}

// Replace publishes a new snapshot. The superseded one is dropped; no
// history is retained.
func (h *SnapshotHolder) Replace(snapshot *models.Snapshot) {
	h.current.Store(snapshot)
}
