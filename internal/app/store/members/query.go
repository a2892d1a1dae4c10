package memberstore

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/somitihub/somiti/internal/domain/models"
)

// Query describes a member listing as three independent narrowing
// steps. Each zero-valued field is a no-op, so callers compose only the
// criteria they have and hand the result to List/Count.
type Query struct {
	// Search matches case-insensitively against name, role, area and bio.
	Search string
	// Role narrows to an exact role.
	Role models.Role
	// Area matches case-insensitively as a substring of area.
	Area string
}

// Filter renders the query as a Mongo filter document. Inactive
// members never match, regardless of the other criteria.
func (q Query) Filter() bson.M {
	filter := bson.M{"is_active": true}

	if s := strings.TrimSpace(q.Search); s != "" {
		re := ciContains(s)
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"role": re},
			bson.M{"area": re},
			bson.M{"bio": re},
		}
	}

	if q.Role != "" {
		filter["role"] = q.Role
	}

	if a := strings.TrimSpace(q.Area); a != "" {
		filter["area"] = ciContains(a)
	}

	return filter
}

// Sort maps an API ordering expression onto a Mongo sort document.
// Fields are comma-separated; a leading "-" reverses a field. Unknown
// fields are ignored, and an empty or all-unknown expression falls back
// to the default role then name order. A trailing _id key keeps the
// order total so pagination never straddles ties.
func (q Query) Sort(ordering string) bson.D {
	var sort bson.D
	for _, field := range strings.Split(ordering, ",") {
		field = strings.TrimSpace(field)
		dir := 1
		if strings.HasPrefix(field, "-") {
			dir = -1
			field = field[1:]
		}
		if key, ok := sortKeys[field]; ok {
			sort = append(sort, bson.E{Key: key, Value: dir})
		}
	}
	if len(sort) == 0 {
		sort = bson.D{{Key: "role", Value: 1}, {Key: "name_ci", Value: 1}}
	}
	return append(sort, bson.E{Key: "_id", Value: 1})
}

// sortKeys maps exposed ordering names to stored fields. Name sorts on
// the case-folded copy so ordering is case-insensitive.
var sortKeys = map[string]string{
	"name":        "name_ci",
	"role":        "role",
	"area":        "area",
	"joined_date": "joined_date",
	"created_at":  "created_at",
}

func ciContains(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
