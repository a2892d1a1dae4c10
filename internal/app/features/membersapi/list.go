package membersapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"

	memberstore "github.com/somitihub/somiti/internal/app/store/members"
	"github.com/somitihub/somiti/internal/app/system/timeouts"
	"github.com/somitihub/somiti/internal/domain/models"
)

// HandleList serves GET /api/members. Filters compose: search spans
// name, role, area and bio; role is an exact match; area is a
// substring match. Ordering accepts comma-separated field names with a
// leading "-" for descending. Inactive members never appear.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	q := memberstore.Query{
		Search: strings.TrimSpace(query.Get(r, "search")),
		Role:   models.Role(strings.TrimSpace(query.Get(r, "role"))),
		Area:   strings.TrimSpace(query.Get(r, "area")),
	}
	ordering := strings.TrimSpace(query.Get(r, "ordering"))

	list, err := h.Members.List(ctx, q, ordering, 0, 0)
	if err != nil {
		h.Log.Error("members api: list", zap.Error(err))
		writeDetailError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	writeJSON(w, http.StatusOK, toListItems(r, h.Files, list))
}
