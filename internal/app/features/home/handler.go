package home

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	memberstore "github.com/somitihub/somiti/internal/app/store/members"
	"github.com/somitihub/somiti/internal/app/system/timeouts"
	"github.com/somitihub/somiti/internal/app/system/viewdata"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Members *memberstore.Store
	Log     *zap.Logger
}

func NewHandler(members *memberstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Members: members,
		Log:     logger,
	}
}

// ServeRoot handles GET / with a landing page and a small directory
// snapshot. A count failure degrades to showing no count rather than
// failing the page.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	var memberCount int64
	if h.Members != nil {
		n, err := h.Members.Count(ctx, memberstore.Query{})
		if err != nil {
			h.Log.Warn("home: count members", zap.Error(err))
		} else {
			memberCount = n
		}
	}

	data := struct {
		viewdata.BaseVM
		MemberCount int64
	}{
		BaseVM:      viewdata.NewBaseVM(r, "Welcome", "/"),
		MemberCount: memberCount,
	}

	templates.Render(w, r, "home", data)
}
