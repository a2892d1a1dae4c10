package portfolio

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/somitihub/somiti/internal/app/system/viewdata"
)

// project is one completed or ongoing initiative shown on the
// portfolio page.
type project struct {
	Name        string
	Year        int
	Description string
}

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServePortfolio handles GET /portfolio.
func (h *Handler) ServePortfolio(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		Projects []project
	}{
		BaseVM: viewdata.NewBaseVM(r, "Portfolio", "/"),
		Projects: []project{
			{"Community Tube Well", 2022, "Installed a deep tube well serving forty households."},
			{"Winter Clothing Drive", 2023, "Distributed blankets and warm clothes across the ward."},
			{"Road Lighting", 2024, "Solar street lights along the main lane, funded by member savings."},
			{"Scholarship Program", 2025, "Ongoing stipends for member children in secondary school."},
		},
	}

	templates.Render(w, r, "portfolio", data)
}
