package membersapi

import (
	"bytes"
	"context"

	"go.uber.org/zap"

	"github.com/somitihub/somiti/internal/app/system/imagepipe"
	"github.com/somitihub/somiti/internal/domain/models"
)

// attachImage runs the two-phase avatar save for a persisted member.
// Phase one stores the raw upload and points the record at it. Phase
// two re-encodes, stores the derived image, repoints the record and
// drops the original. Each phase failure leaves the member with the
// best image reference reached so far; none fails the API call that
// carried the upload.
func (h *Handler) attachImage(ctx context.Context, m models.Member, up *upload) models.Member {
	orig, err := imagepipe.StoreOriginal(ctx, h.Files, m, up.Filename, bytes.NewReader(up.Data))
	if err != nil {
		h.Log.Warn("members api: store upload",
			zap.Int64("id", m.ID), zap.Error(err))
		return m
	}
	if err := h.Members.SetImagePath(ctx, m.ID, orig); err != nil {
		h.Log.Warn("members api: record upload path",
			zap.Int64("id", m.ID), zap.Error(err))
		return m
	}
	m.ImagePath = orig

	derived, err := imagepipe.Derive(ctx, h.Files, h.Log, m, up.Data)
	if err != nil {
		h.Log.Warn("members api: derive avatar",
			zap.Int64("id", m.ID), zap.Error(err))
		return m
	}
	if err := h.Members.SetImagePath(ctx, m.ID, derived); err != nil {
		h.Log.Warn("members api: record avatar path",
			zap.Int64("id", m.ID), zap.Error(err))
		return m
	}
	m.ImagePath = derived
	return m
}
