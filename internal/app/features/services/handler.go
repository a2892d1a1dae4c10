package services

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/somitihub/somiti/internal/app/system/viewdata"
)

// service is one offering shown on the services page.
type service struct {
	Name        string
	Description string
}

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeServices handles GET /services.
func (h *Handler) ServeServices(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		Services []service
	}{
		BaseVM: viewdata.NewBaseVM(r, "Our Services", "/"),
		Services: []service{
			{"Monthly Savings", "A fixed monthly deposit scheme with annual profit sharing among members."},
			{"Member Loans", "Low-interest loans for education, medical needs and small businesses."},
			{"Emergency Fund", "Immediate assistance for member families facing illness or loss."},
			{"Community Events", "Annual gatherings, religious festivals and sports for the neighborhood."},
		},
	}

	templates.Render(w, r, "services", data)
}
