// Package membersapi exposes the member directory as a JSON API.
package membersapi

import (
	"go.uber.org/zap"

	memberstore "github.com/somitihub/somiti/internal/app/store/members"
	"github.com/somitihub/somiti/internal/app/system/avatar"
	"github.com/somitihub/somiti/internal/app/system/imagepipe"
)

// Files is the storage surface the API needs: serving URLs for stored
// avatars plus writing and deleting image blobs.
type Files interface {
	avatar.URLer
	imagepipe.Blobs
}

// Handler is the feature-level handler for the members API.
type Handler struct {
	Members *memberstore.Store
	Files   Files
	Log     *zap.Logger
}

func NewHandler(members *memberstore.Store, files Files, logger *zap.Logger) *Handler {
	return &Handler{
		Members: members,
		Files:   files,
		Log:     logger,
	}
}
