package contact

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/somitihub/somiti/internal/app/system/viewdata"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeContact handles GET /contact.
func (h *Handler) ServeContact(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		Address string
		Phone   string
		Email   string
		Hours   string
	}{
		BaseVM:  viewdata.NewBaseVM(r, "Contact Us", "/"),
		Address: "House 12, Road 3, Mirpur, Dhaka 1216",
		Phone:   "+880 1900 000000",
		Email:   "info@somitihub.org",
		Hours:   "Saturday to Thursday, 10am to 6pm",
	}

	templates.Render(w, r, "contact", data)
}
