// Package avatar resolves the profile-image URL for a member.
package avatar

import (
	"net/http"
	"strings"

	"github.com/somitihub/somiti/internal/domain/models"
)

// URLer is the slice of the file-storage layer this package needs: it
// maps a stored path to a serving URL. waffle's storage.Store satisfies
// it.
type URLer interface {
	URL(path string) string
}

// URL returns the storage URL of the member's image, or the fixed
// placeholder when no image has been uploaded.
func URL(store URLer, m models.Member) string {
	if m.HasImage() && store != nil {
		return store.URL(m.ImagePath)
	}
	return models.DefaultAvatarURL
}

// Absolute rewrites a scheme-less URL against the origin of r. Already
// absolute URLs, and calls without a request, are returned unchanged.
func Absolute(r *http.Request, u string) string {
	if u == "" || r == nil {
		return u
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}

	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	return scheme + "://" + r.Host + u
}

// Resolve combines URL and Absolute: the member's avatar URL, made
// absolute when a request context is available.
func Resolve(r *http.Request, store URLer, m models.Member) string {
	return Absolute(r, URL(store, m))
}
