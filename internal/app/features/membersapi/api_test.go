package membersapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/disintegration/imaging"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/somitihub/somiti/internal/app/features/membersapi"
	"github.com/somitihub/somiti/internal/domain/models"
	"github.com/somitihub/somiti/internal/testutil"
)

// memFiles is an in-memory stand-in for the file storage backend.
type memFiles struct {
	files map[string][]byte
}

func newMemFiles() *memFiles { return &memFiles{files: map[string][]byte{}} }

func (f *memFiles) URL(path string) string { return "/files/" + path }

func (f *memFiles) Put(_ context.Context, path string, r io.Reader, _ *storage.PutOptions) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.files[path] = data
	return nil
}

func (f *memFiles) Delete(_ context.Context, path string) error {
	delete(f.files, path)
	return nil
}

type apiFixture struct {
	fx     *testutil.Fixtures
	files  *memFiles
	server http.Handler
}

func setupAPI(t *testing.T) *apiFixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	files := newMemFiles()
	h := membersapi.NewHandler(fx.Members(), files, zap.NewNop())

	r := chi.NewRouter()
	r.Mount("/api/members", membersapi.Routes(h))
	return &apiFixture{fx: fx, files: files, server: r}
}

func (a *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.server.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestListHidesInactiveByDefault(t *testing.T) {
	a := setupAPI(t)
	ctx := testutil.TestContext(t)

	a.fx.CreateMember(ctx, "Visible Member", models.RoleMember)
	a.fx.CreateInactiveMember(ctx, "Hidden Member", models.RoleMember)

	rec := a.do(t, "GET", "/api/members/", nil)
	if rec.Code != 200 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	list := decode[[]map[string]any](t, rec)
	if len(list) != 1 || list[0]["name"] != "Visible Member" {
		t.Errorf("list = %v", list)
	}

	rec = a.do(t, "GET", "/api/members/?search=Hidden", nil)
	if found := decode[[]map[string]any](t, rec); len(found) != 0 {
		t.Errorf("search reached inactive member: %v", found)
	}
}

func TestInactiveMemberUnreachableByID(t *testing.T) {
	a := setupAPI(t)
	ctx := testutil.TestContext(t)

	m := a.fx.CreateInactiveMember(ctx, "Gone Member", models.RoleMember)
	path := fmt.Sprintf("/api/members/%d", m.ID)

	for _, method := range []string{"GET", "DELETE"} {
		if rec := a.do(t, method, path, nil); rec.Code != 404 {
			t.Errorf("%s %s = %d, want 404", method, path, rec.Code)
		}
	}
	body := map[string]any{"name": "Gone Member", "role": "Member", "area": "Ward 1", "phone": "+8801911111111"}
	if rec := a.do(t, "PUT", path, body); rec.Code != 404 {
		t.Errorf("PUT inactive = %d, want 404", rec.Code)
	}
	if rec := a.do(t, "PATCH", path, map[string]any{"area": "Ward 2"}); rec.Code != 404 {
		t.Errorf("PATCH inactive = %d, want 404", rec.Code)
	}
}

func TestListFiltersCompose(t *testing.T) {
	a := setupAPI(t)
	ctx := testutil.TestContext(t)

	a.fx.CreateMemberIn(ctx, "Abdul Karim", models.RolePresident, "Mirpur")
	a.fx.CreateMemberIn(ctx, "Rahima Begum", models.RoleMember, "Mirpur")
	a.fx.CreateMemberIn(ctx, "Salma Khatun", models.RoleMember, "Uttara")

	// A search term can hit the role field itself.
	rec := a.do(t, "GET", "/api/members/?search=president", nil)
	list := decode[[]map[string]any](t, rec)
	if len(list) != 1 || list[0]["name"] != "Abdul Karim" {
		t.Errorf("role-name search = %v", list)
	}

	rec = a.do(t, "GET", "/api/members/?search=mirpur&role=Member", nil)
	list = decode[[]map[string]any](t, rec)
	if len(list) != 1 || list[0]["name"] != "Rahima Begum" {
		t.Errorf("composed filter = %v", list)
	}

	rec = a.do(t, "GET", "/api/members/?area=uttara", nil)
	list = decode[[]map[string]any](t, rec)
	if len(list) != 1 || list[0]["name"] != "Salma Khatun" {
		t.Errorf("area filter = %v", list)
	}

	rec = a.do(t, "GET", "/api/members/?ordering=-name", nil)
	list = decode[[]map[string]any](t, rec)
	if len(list) != 3 || list[0]["name"] != "Salma Khatun" {
		t.Errorf("ordering = %v", list)
	}
}

func TestCreateDefaultsAndValidation(t *testing.T) {
	a := setupAPI(t)

	rec := a.do(t, "POST", "/api/members/", map[string]any{
		"name":  "New Member",
		"area":  "Banani",
		"phone": "+8801712345678",
	})
	if rec.Code != 201 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	created := decode[map[string]any](t, rec)
	if created["role"] != "Member" {
		t.Errorf("default role = %v", created["role"])
	}
	if created["is_active"] != true {
		t.Errorf("is_active = %v", created["is_active"])
	}
	if created["avatar_url"] != models.DefaultAvatarURL {
		t.Errorf("avatar_url = %v", created["avatar_url"])
	}

	rec = a.do(t, "POST", "/api/members/", map[string]any{
		"name": "Bad Phone", "area": "X", "phone": "12345",
	})
	if rec.Code != 400 {
		t.Fatalf("status = %d", rec.Code)
	}
	fields := decode[map[string]string](t, rec)
	if !strings.Contains(fields["phone"], "+8801900000000") {
		t.Errorf("phone error = %q", fields["phone"])
	}
}

func TestGetUpdatePatchDelete(t *testing.T) {
	a := setupAPI(t)
	ctx := testutil.TestContext(t)

	m := a.fx.CreateMemberIn(ctx, "Edit Target", models.RoleMember, "Mirpur")
	base := fmt.Sprintf("/api/members/%d", m.ID)

	rec := a.do(t, "GET", base, nil)
	if rec.Code != 200 {
		t.Fatalf("get status = %d", rec.Code)
	}

	// PUT replaces; omitting a required field fails.
	rec = a.do(t, "PUT", base, map[string]any{"name": "Renamed"})
	if rec.Code != 400 {
		t.Fatalf("partial PUT status = %d, want 400", rec.Code)
	}

	rec = a.do(t, "PUT", base, map[string]any{
		"name": "Renamed", "role": "Secretary", "area": "Banani", "phone": m.Phone,
	})
	if rec.Code != 200 {
		t.Fatalf("PUT status = %d, body %s", rec.Code, rec.Body)
	}
	if got := decode[map[string]any](t, rec); got["role"] != "Secretary" {
		t.Errorf("PUT role = %v", got["role"])
	}

	// PATCH keeps everything it does not mention.
	rec = a.do(t, "PATCH", base, map[string]any{"area": "Dhanmondi"})
	if rec.Code != 200 {
		t.Fatalf("PATCH status = %d, body %s", rec.Code, rec.Body)
	}
	got := decode[map[string]any](t, rec)
	if got["area"] != "Dhanmondi" || got["name"] != "Renamed" {
		t.Errorf("PATCH result = %v", got)
	}

	rec = a.do(t, "DELETE", base, nil)
	if rec.Code != 204 {
		t.Fatalf("DELETE status = %d", rec.Code)
	}
	rec = a.do(t, "GET", base, nil)
	if rec.Code != 404 {
		t.Fatalf("status after delete = %d", rec.Code)
	}
	if body := decode[map[string]string](t, rec); body["detail"] != "Not found." {
		t.Errorf("404 body = %v", body)
	}
}

func TestJoinedDateIsReadOnly(t *testing.T) {
	a := setupAPI(t)
	ctx := testutil.TestContext(t)

	m := a.fx.CreateMember(ctx, "Date Target", models.RoleMember)
	base := fmt.Sprintf("/api/members/%d", m.ID)
	// Stored times come back at millisecond precision.
	joined := m.JoinedDate.Truncate(time.Millisecond)

	check := func(rec *httptest.ResponseRecorder, method string) {
		t.Helper()
		if rec.Code != 200 {
			t.Fatalf("%s status = %d, body %s", method, rec.Code, rec.Body)
		}
		raw, _ := decode[map[string]any](t, rec)["joined_date"].(string)
		got, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			t.Fatalf("%s joined_date %q: %v", method, raw, err)
		}
		if !got.Equal(joined) {
			t.Errorf("%s moved joined_date: %v, want %v", method, got, joined)
		}
	}

	check(a.do(t, "PATCH", base, map[string]any{"joined_date": "1999-01-01T00:00:00Z"}), "PATCH")
	check(a.do(t, "PUT", base, map[string]any{
		"name": "Date Target", "role": "Member", "area": "Ward 1",
		"phone": m.Phone, "joined_date": "1999-01-01T00:00:00Z",
	}), "PUT")
}

func TestRolesEndpoint(t *testing.T) {
	a := setupAPI(t)

	rec := a.do(t, "GET", "/api/members/roles", nil)
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	roles := decode[[]map[string]string](t, rec)
	if len(roles) != 5 {
		t.Fatalf("roles = %v", roles)
	}
	if roles[0]["value"] != "President" || roles[0]["label"] != "President" {
		t.Errorf("first role = %v", roles[0])
	}
}

func TestByRole(t *testing.T) {
	a := setupAPI(t)
	ctx := testutil.TestContext(t)

	a.fx.CreateMember(ctx, "The Treasurer", models.RoleTreasurer)
	a.fx.CreateMember(ctx, "A Member", models.RoleMember)

	rec := a.do(t, "GET", "/api/members/by-role", nil)
	if rec.Code != 400 {
		t.Fatalf("missing role status = %d", rec.Code)
	}
	if body := decode[map[string]string](t, rec); body["error"] != "Role parameter is required" {
		t.Errorf("missing role body = %v", body)
	}

	rec = a.do(t, "GET", "/api/members/by-role?role=Treasurer", nil)
	list := decode[[]map[string]any](t, rec)
	if len(list) != 1 || list[0]["name"] != "The Treasurer" {
		t.Errorf("by-role list = %v", list)
	}
	// Full rows, unlike the compact collection listing.
	if _, ok := list[0]["phone"]; !ok {
		t.Errorf("by-role row missing phone: %v", list[0])
	}
	if _, ok := list[0]["is_active"]; !ok {
		t.Errorf("by-role row missing is_active: %v", list[0])
	}

	rec = a.do(t, "GET", "/api/members/by-role?role=Chairman", nil)
	if list := decode[[]map[string]any](t, rec); len(list) != 0 {
		t.Errorf("unknown role list = %v", list)
	}
}

func TestToggleActive(t *testing.T) {
	a := setupAPI(t)
	ctx := testutil.TestContext(t)

	m := a.fx.CreateMember(ctx, "Toggle Target", models.RoleMember)
	path := fmt.Sprintf("/api/members/%d/toggle-active", m.ID)

	rec := a.do(t, "POST", path, nil)
	if rec.Code != 200 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if got := decode[map[string]any](t, rec); got["is_active"] != false {
		t.Errorf("after first toggle = %v", got["is_active"])
	}

	// A second toggle restores the original state even though the
	// member is invisible to the detail routes while inactive.
	rec = a.do(t, "POST", path, nil)
	if got := decode[map[string]any](t, rec); got["is_active"] != true {
		t.Errorf("after second toggle = %v", got["is_active"])
	}

	rec = a.do(t, "POST", "/api/members/9999/toggle-active", nil)
	if rec.Code != 404 {
		t.Errorf("missing member status = %d", rec.Code)
	}
}

func TestBulkActivateDeactivate(t *testing.T) {
	a := setupAPI(t)
	ctx := testutil.TestContext(t)

	m1 := a.fx.CreateMember(ctx, "Bulk One", models.RoleMember)
	m2 := a.fx.CreateMember(ctx, "Bulk Two", models.RoleMember)

	rec := a.do(t, "POST", "/api/members/bulk-deactivate", map[string]any{
		"ids": []int64{m1.ID, m2.ID, 9999},
	})
	if rec.Code != 200 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if got := decode[map[string]int64](t, rec); got["count"] != 2 {
		t.Errorf("deactivate count = %v", got)
	}

	rec = a.do(t, "POST", "/api/members/bulk-activate", map[string]any{
		"ids": []int64{m1.ID},
	})
	if got := decode[map[string]int64](t, rec); got["count"] != 1 {
		t.Errorf("activate count = %v", got)
	}

	rec = a.do(t, "GET", fmt.Sprintf("/api/members/%d", m1.ID), nil)
	if got := decode[map[string]any](t, rec); got["is_active"] != true {
		t.Errorf("m1 active = %v", got["is_active"])
	}
}

func TestCreateWithImageDerivesAvatar(t *testing.T) {
	a := setupAPI(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("name", "Photo Member")
	_ = mw.WriteField("role", "Secretary")
	_ = mw.WriteField("area", "Mirpur")
	_ = mw.WriteField("phone", "+8801912345678")

	fw, err := mw.CreateFormFile("image", "photo.png")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	img := imaging.New(6, 6, color.NRGBA{R: 10, G: 120, B: 40, A: 255})
	if err := imaging.Encode(fw, img, imaging.PNG); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	_ = mw.Close()

	req := httptest.NewRequest("POST", "/api/members/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	a.server.ServeHTTP(rec, req)

	if rec.Code != 201 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	created := decode[map[string]any](t, rec)
	avatarURL, _ := created["avatar_url"].(string)
	if !strings.Contains(avatarURL, "/files/members/Secretary/Photo_Member_") {
		t.Errorf("avatar_url = %q", avatarURL)
	}
	if !strings.HasSuffix(avatarURL, ".jpg") {
		t.Errorf("avatar_url = %q, want derived .jpg", avatarURL)
	}

	// Only the derived image remains in storage.
	if len(a.files.files) != 1 {
		t.Errorf("stored files = %v", a.files.files)
	}
	for path := range a.files.files {
		if !strings.HasSuffix(path, ".jpg") {
			t.Errorf("remaining file = %q", path)
		}
	}
}
