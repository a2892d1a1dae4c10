package membersapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	memberstore "github.com/somitihub/somiti/internal/app/store/members"
	"github.com/somitihub/somiti/internal/app/system/timeouts"
	"github.com/somitihub/somiti/internal/domain/models"
)

// memberID parses the {id} route parameter. A non-numeric ID is
// indistinguishable from a missing member.
func memberID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// storeError maps store failures onto API responses.
func (h *Handler) storeError(w http.ResponseWriter, op string, err error) {
	var verr *memberstore.ValidationError
	switch {
	case errors.As(err, &verr):
		writeFieldErrors(w, verr.Fields)
	case errors.Is(err, memberstore.ErrNotFound):
		writeNotFound(w)
	case errors.Is(err, memberstore.ErrDuplicatePhone):
		writeFieldErrors(w, map[string]string{"phone": err.Error()})
	default:
		h.Log.Error("members api: "+op, zap.Error(err))
		writeDetailError(w, http.StatusInternalServerError, "Internal server error.")
	}
}

// HandleCreate serves POST /api/members. Accepts JSON or a multipart
// form; a multipart "image" file becomes the member's avatar after
// re-encoding.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	in, up, err := parseInput(r)
	if err != nil {
		writeDetailError(w, http.StatusBadRequest, "Malformed request body.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long)
	defer cancel()

	var m models.Member
	in.apply(&m)

	created, err := h.Members.Create(ctx, m)
	if err != nil {
		h.storeError(w, "create", err)
		return
	}

	if up != nil {
		created = h.attachImage(ctx, created, up)
	}

	writeJSON(w, http.StatusCreated, toDetailItem(r, h.Files, created))
}

// HandleGet serves GET /api/members/{id}. Inactive members are
// indistinguishable from missing ones.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := memberID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	m, err := h.Members.GetActive(ctx, id)
	if err != nil {
		h.storeError(w, "get", err)
		return
	}
	writeJSON(w, http.StatusOK, toDetailItem(r, h.Files, *m))
}

// HandleUpdate serves PUT /api/members/{id}: a full replacement, so
// omitted required fields fail validation.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

// HandlePatch serves PATCH /api/members/{id}: omitted fields keep
// their stored values.
func (h *Handler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, partial bool) {
	id, ok := memberID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	in, up, err := parseInput(r)
	if err != nil {
		writeDetailError(w, http.StatusBadRequest, "Malformed request body.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long)
	defer cancel()

	// Writes go through the same active-only window as reads, so an
	// update never resurrects a deactivated record.
	existing, err := h.Members.GetActive(ctx, id)
	if err != nil {
		h.storeError(w, "update", err)
		return
	}

	var base models.Member
	if partial {
		base = *existing
	}

	in.apply(&base)

	updated, err := h.Members.Update(ctx, id, base)
	if err != nil {
		h.storeError(w, "update", err)
		return
	}

	if up != nil {
		updated = h.attachImage(ctx, updated, up)
	}

	writeJSON(w, http.StatusOK, toDetailItem(r, h.Files, updated))
}

// HandleDelete serves DELETE /api/members/{id}. The stored avatar, if
// any, is removed best-effort with the record.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := memberID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	m, err := h.Members.GetActive(ctx, id)
	if err != nil {
		h.storeError(w, "delete", err)
		return
	}

	if err := h.Members.Delete(ctx, id); err != nil {
		h.storeError(w, "delete", err)
		return
	}

	if m.HasImage() {
		if err := h.Files.Delete(ctx, m.ImagePath); err != nil {
			h.Log.Warn("members api: delete avatar",
				zap.String("path", m.ImagePath), zap.Error(err))
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
