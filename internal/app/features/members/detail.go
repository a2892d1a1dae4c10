package members

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "github.com/somitihub/somiti/internal/app/features/errors"
	memberstore "github.com/somitihub/somiti/internal/app/store/members"
	"github.com/somitihub/somiti/internal/app/system/avatar"
	"github.com/somitihub/somiti/internal/app/system/timeouts"
	"github.com/somitihub/somiti/internal/app/system/viewdata"
	"github.com/somitihub/somiti/internal/domain/models"
)

// ServeDetail renders a single member's profile. Inactive members are
// not shown; they 404 exactly like missing IDs.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		uierrors.RenderNotFound(w, r, "No such member.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	m, err := h.Members.GetActive(ctx, id)
	if err != nil {
		if errors.Is(err, memberstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "No such member.")
			return
		}
		h.Log.Error("members: detail", zap.Int64("id", id), zap.Error(err))
		uierrors.RenderServerError(w, r)
		return
	}

	data := struct {
		viewdata.BaseVM
		Member    models.Member
		Bio       template.HTML
		AvatarURL string
	}{
		BaseVM: viewdata.NewBaseVM(r, m.Name, "/members"),
		Member: *m,
		// Bio is sanitized on write, so it is safe to render as HTML.
		Bio:       template.HTML(m.Bio),
		AvatarURL: avatar.Resolve(r, h.Files, *m),
	}

	templates.Render(w, r, "member_detail", data)
}
