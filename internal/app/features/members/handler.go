// Package members serves the public member directory pages.
package members

import (
	"go.uber.org/zap"

	"github.com/somitihub/somiti/internal/app/system/avatar"
	memberstore "github.com/somitihub/somiti/internal/app/store/members"
)

// Handler is the feature-level handler for the member directory.
type Handler struct {
	Members *memberstore.Store
	Files   avatar.URLer
	Log     *zap.Logger
}

func NewHandler(members *memberstore.Store, files avatar.URLer, logger *zap.Logger) *Handler {
	return &Handler{
		Members: members,
		Files:   files,
		Log:     logger,
	}
}
