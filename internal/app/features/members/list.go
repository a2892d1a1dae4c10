package members

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/somitihub/somiti/internal/app/features/errors"
	memberstore "github.com/somitihub/somiti/internal/app/store/members"
	"github.com/somitihub/somiti/internal/app/system/avatar"
	"github.com/somitihub/somiti/internal/app/system/paging"
	"github.com/somitihub/somiti/internal/app/system/timeouts"
	"github.com/somitihub/somiti/internal/app/system/viewdata"
	"github.com/somitihub/somiti/internal/domain/models"
)

// memberRow is one directory card in the list template.
type memberRow struct {
	ID        int64
	Name      string
	Role      models.Role
	Area      string
	AvatarURL string
}

// ServeList renders the member directory with search, role filter and
// pagination. Filters compose: a search narrowed by a role shows only
// members matching both.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	searchQuery := strings.TrimSpace(query.Get(r, "search"))
	roleFilter := strings.TrimSpace(query.Get(r, "role"))

	q := memberstore.Query{
		Search: searchQuery,
		Role:   models.Role(roleFilter),
	}

	total, err := h.Members.Count(ctx, q)
	if err != nil {
		h.Log.Error("members: count", zap.Error(err))
		uierrors.RenderServerError(w, r)
		return
	}

	page := paging.Paginate(total, paging.ParsePage(r), paging.PageSize)

	list, err := h.Members.List(ctx, q, "", page.Offset, int64(page.Size))
	if err != nil {
		h.Log.Error("members: list", zap.Error(err))
		uierrors.RenderServerError(w, r)
		return
	}

	rows := make([]memberRow, 0, len(list))
	for _, m := range list {
		rows = append(rows, memberRow{
			ID:        m.ID,
			Name:      m.Name,
			Role:      m.Role,
			Area:      m.Area,
			AvatarURL: avatar.Resolve(r, h.Files, m),
		})
	}

	data := struct {
		viewdata.BaseVM
		Members     []memberRow
		SearchQuery string
		RoleFilter  string
		RoleChoices []models.RoleChoice
		Page        paging.Page
	}{
		BaseVM:      viewdata.NewBaseVM(r, "Our Members", "/"),
		Members:     rows,
		SearchQuery: searchQuery,
		RoleFilter:  roleFilter,
		RoleChoices: models.RoleChoices(),
		Page:        page,
	}

	templates.Render(w, r, "members", data)
}
