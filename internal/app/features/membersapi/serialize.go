package membersapi

import (
	"net/http"
	"time"

	"github.com/somitihub/somiti/internal/app/system/avatar"
	"github.com/somitihub/somiti/internal/domain/models"
)

// listItem is the compact projection used by collection endpoints.
type listItem struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Role      models.Role `json:"role"`
	Area      string      `json:"area"`
	AvatarURL string      `json:"avatar_url"`
}

// detailItem is the full projection used by single-member endpoints.
type detailItem struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Role       models.Role `json:"role"`
	Area       string      `json:"area"`
	Phone      string      `json:"phone"`
	Email      string      `json:"email"`
	Bio        string      `json:"bio"`
	AvatarURL  string      `json:"avatar_url"`
	IsActive   bool        `json:"is_active"`
	JoinedDate time.Time   `json:"joined_date"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// toListItem projects a member for collection responses. Avatar URLs
// are made absolute against the request host when possible.
func toListItem(r *http.Request, files avatar.URLer, m models.Member) listItem {
	return listItem{
		ID:        m.ID,
		Name:      m.Name,
		Role:      m.Role,
		Area:      m.Area,
		AvatarURL: avatar.Resolve(r, files, m),
	}
}

func toListItems(r *http.Request, files avatar.URLer, ms []models.Member) []listItem {
	out := make([]listItem, 0, len(ms))
	for _, m := range ms {
		out = append(out, toListItem(r, files, m))
	}
	return out
}

func toDetailItems(r *http.Request, files avatar.URLer, ms []models.Member) []detailItem {
	out := make([]detailItem, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDetailItem(r, files, m))
	}
	return out
}

func toDetailItem(r *http.Request, files avatar.URLer, m models.Member) detailItem {
	return detailItem{
		ID:         m.ID,
		Name:       m.Name,
		Role:       m.Role,
		Area:       m.Area,
		Phone:      m.Phone,
		Email:      m.Email,
		Bio:        m.Bio,
		AvatarURL:  avatar.Resolve(r, files, m),
		IsActive:   m.IsActive,
		JoinedDate: m.JoinedDate,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
