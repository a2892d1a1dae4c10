package testutil

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	memberstore "github.com/somitihub/somiti/internal/app/store/members"
	"github.com/somitihub/somiti/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db      *mongo.Database
	members *memberstore.Store
	t       *testing.T
	seq     int
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, members: memberstore.New(db), t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// Members returns the store the fixtures write through.
func (f *Fixtures) Members() *memberstore.Store {
	return f.members
}

// CreateMember inserts an active member with the given name and role,
// filling the remaining required fields with distinct values.
func (f *Fixtures) CreateMember(ctx context.Context, name string, role models.Role) models.Member {
	f.t.Helper()
	f.seq++

	m, err := f.members.Create(ctx, models.Member{
		Name:  name,
		Role:  role,
		Area:  fmt.Sprintf("Ward %d", f.seq),
		Phone: fmt.Sprintf("+8801%09d", f.seq),
	})
	if err != nil {
		f.t.Fatalf("create test member %q: %v", name, err)
	}
	return m
}

// CreateInactiveMember inserts a member and then deactivates it.
func (f *Fixtures) CreateInactiveMember(ctx context.Context, name string, role models.Role) models.Member {
	f.t.Helper()

	m := f.CreateMember(ctx, name, role)
	toggled, err := f.members.ToggleActive(ctx, m.ID)
	if err != nil {
		f.t.Fatalf("deactivate test member %q: %v", name, err)
	}
	return *toggled
}

// CreateMemberIn inserts an active member scoped to an area, for
// search and area-filter tests.
func (f *Fixtures) CreateMemberIn(ctx context.Context, name string, role models.Role, area string) models.Member {
	f.t.Helper()
	f.seq++

	m, err := f.members.Create(ctx, models.Member{
		Name:  name,
		Role:  role,
		Area:  area,
		Phone: fmt.Sprintf("+8801%09d", f.seq),
	})
	if err != nil {
		f.t.Fatalf("create test member %q: %v", name, err)
	}
	return m
}
