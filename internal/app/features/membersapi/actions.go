package membersapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"

	memberstore "github.com/somitihub/somiti/internal/app/store/members"
	"github.com/somitihub/somiti/internal/app/system/timeouts"
	"github.com/somitihub/somiti/internal/domain/models"
)

// HandleRoles serves GET /api/members/roles with the role enumeration.
func (h *Handler) HandleRoles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.RoleChoices())
}

// HandleByRole serves GET /api/members/by-role?role=X. The role
// parameter is required; an unknown role simply matches nothing.
// Rows carry the full projection, not the compact list one.
func (h *Handler) HandleByRole(w http.ResponseWriter, r *http.Request) {
	role := strings.TrimSpace(query.Get(r, "role"))
	if role == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Role parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	list, err := h.Members.List(ctx, memberstore.Query{Role: models.Role(role)}, "", 0, 0)
	if err != nil {
		h.Log.Error("members api: by-role", zap.Error(err))
		writeDetailError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	writeJSON(w, http.StatusOK, toDetailItems(r, h.Files, list))
}

// HandleToggleActive serves POST /api/members/{id}/toggle-active and
// returns the member as it stands after the flip. Unlike the detail
// routes this reaches inactive members too, otherwise a deactivated
// member could never be toggled back.
func (h *Handler) HandleToggleActive(w http.ResponseWriter, r *http.Request) {
	id, ok := memberID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	m, err := h.Members.ToggleActive(ctx, id)
	if err != nil {
		h.storeError(w, "toggle-active", err)
		return
	}
	writeJSON(w, http.StatusOK, toDetailItem(r, h.Files, *m))
}

// bulkRequest is the body for the bulk activate/deactivate endpoints.
type bulkRequest struct {
	IDs []int64 `json:"ids"`
}

// HandleBulkActivate serves POST /api/members/bulk-activate.
func (h *Handler) HandleBulkActivate(w http.ResponseWriter, r *http.Request) {
	h.bulkSetActive(w, r, true)
}

// HandleBulkDeactivate serves POST /api/members/bulk-deactivate.
func (h *Handler) HandleBulkDeactivate(w http.ResponseWriter, r *http.Request) {
	h.bulkSetActive(w, r, false)
}

func (h *Handler) bulkSetActive(w http.ResponseWriter, r *http.Request, active bool) {
	var req bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetailError(w, http.StatusBadRequest, "Malformed request body.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	n, err := h.Members.SetActiveMany(ctx, req.IDs, active)
	if err != nil {
		h.Log.Error("members api: bulk set active",
			zap.Bool("active", active), zap.Error(err))
		writeDetailError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": n})
}
