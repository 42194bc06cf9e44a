package v1handler

import (
	"context"
	"countries/internal/api/specs/v1specs"
)

// RequestSnapshot queues a refresh of the stored default list. Enqueued is
// false when a refresh is already pending.
func (h *Handler) RequestSnapshot(ctx context.Context) (*v1specs.RequestSnapshotAccepted, error) {
	enqueued, err := h.countries.RequestRefresh(ctx)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.RequestSnapshotAccepted{Enqueued: enqueued}, nil
}
