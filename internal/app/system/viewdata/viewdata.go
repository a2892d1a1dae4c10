// Package viewdata supplies the view-model fields shared by every
// server-rendered page.
package viewdata

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/httpnav"
)

// SiteName appears in page titles and the shared chrome.
const SiteName = "SomitiHub"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName    string
	Title       string
	BackURL     string
	CurrentPath string
	Year        int
}

// NewBaseVM builds the shared fields for a page. defaultBack is used
// when the request carries no usable return target.
func NewBaseVM(r *http.Request, title, defaultBack string) BaseVM {
	return BaseVM{
		SiteName:    SiteName,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, defaultBack),
		CurrentPath: httpnav.CurrentPath(r),
		Year:        time.Now().Year(),
	}
}
