// internal/domain/models/member.go
package models

import (
	"time"
)

// Role is the closed set of positions a member can hold.
type Role string

const (
	RolePresident Role = "President"
	RoleSecretary Role = "Secretary"
	RoleTreasurer Role = "Treasurer"
	RoleCommittee Role = "Committee"
	RoleMember    Role = "Member"
)

// DefaultRole is assigned when a member is created without a role.
const DefaultRole = RoleMember

// Roles returns all roles in their canonical display order. The order is
// stable: the roles endpoint and filter dropdowns depend on it.
func Roles() []Role {
	return []Role{
		RolePresident,
		RoleSecretary,
		RoleTreasurer,
		RoleCommittee,
		RoleMember,
	}
}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RolePresident, RoleSecretary, RoleTreasurer, RoleCommittee, RoleMember:
		return true
	}
	return false
}

// RoleChoice pairs a role's stored value with its display label.
type RoleChoice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// RoleChoices returns (value, label) pairs for every role, in the same
// order as Roles.
func RoleChoices() []RoleChoice {
	roles := Roles()
	choices := make([]RoleChoice, 0, len(roles))
	for _, r := range roles {
		choices = append(choices, RoleChoice{Value: string(r), Label: string(r)})
	}
	return choices
}

// DefaultAvatarURL is served for members without an uploaded image.
const DefaultAvatarURL = "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?q=80&w=200&h=200&auto=format&fit=crop&crop=faces"

// Member is a single directory entry: a person with a role, contact
// details, and an activity flag.
//
// IDs are numeric and allocated from the counters collection at create
// time; they never change. Inactive members stay in storage but are
// excluded from every public-facing query.
type Member struct {
	ID     int64  `bson:"_id" json:"id"`
	Name   string `bson:"name" json:"name"`
	NameCI string `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped
	Role   Role   `bson:"role" json:"role"`
	Area   string `bson:"area" json:"area"`

	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`

	Bio       string `bson:"bio,omitempty" json:"bio,omitempty"`
	ImagePath string `bson:"image_path,omitempty" json:"-"`

	IsActive   bool      `bson:"is_active" json:"is_active"`
	JoinedDate time.Time `bson:"joined_date" json:"joined_date"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// HasImage reports whether the member has an uploaded image.
func (m Member) HasImage() bool { return m.ImagePath != "" }
