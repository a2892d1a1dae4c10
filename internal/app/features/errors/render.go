// Package errors renders the site's friendly error pages.
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/somitihub/somiti/internal/app/system/viewdata"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// RenderNotFound shows a friendly "not found" page with a 404 status.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg string) {
	if msg == "" {
		msg = "The page you are looking for does not exist."
	}
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_not_found", pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Not found", "/"),
		Message: msg,
	})
}

// RenderServerError shows a friendly "something went wrong" page with a
// 500 status. The underlying error is logged by the caller, never shown.
func RenderServerError(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_server", pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Something went wrong", "/"),
		Message: "An unexpected error occurred. Please try again.",
	})
}

// NotFoundHandler adapts RenderNotFound for use as the router's
// fallback handler.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RenderNotFound(w, r, "")
	}
}
