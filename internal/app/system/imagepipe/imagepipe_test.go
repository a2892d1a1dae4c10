package imagepipe

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/somitihub/somiti/internal/domain/models"
)

type memBlobs struct {
	files   map[string][]byte
	types   map[string]string
	deleted []string
	failDel bool
}

func newMemBlobs() *memBlobs {
	return &memBlobs{files: map[string][]byte{}, types: map[string]string{}}
}

func (b *memBlobs) Put(_ context.Context, path string, r io.Reader, opts *storage.PutOptions) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	b.files[path] = data
	if opts != nil {
		b.types[path] = opts.ContentType
	}
	return nil
}

func (b *memBlobs) Delete(_ context.Context, path string) error {
	if b.failDel {
		return errors.New("delete refused")
	}
	b.deleted = append(b.deleted, path)
	delete(b.files, path)
	return nil
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := imaging.New(4, 4, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestDeriveReencodesAndRenames(t *testing.T) {
	blobs := newMemBlobs()
	m := models.Member{
		Name:      "Abdul Karim",
		Role:      models.RolePresident,
		ImagePath: "members/President/original.png",
	}
	blobs.files[m.ImagePath] = testPNG(t)

	path, err := Derive(context.Background(), blobs, zap.NewNop(), m, testPNG(t))
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	if !strings.HasPrefix(path, "members/President/Abdul_Karim_") {
		t.Errorf("derived path %q lacks role/name prefix", path)
	}
	if !strings.HasSuffix(path, ".jpg") {
		t.Errorf("derived path %q is not a .jpg", path)
	}
	if blobs.types[path] != "image/jpeg" {
		t.Errorf("content type = %q, want image/jpeg", blobs.types[path])
	}

	img, err := imaging.Decode(bytes.NewReader(blobs.files[path]))
	if err != nil {
		t.Fatalf("derived bytes do not decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("derived bounds = %v, want 4x4", img.Bounds())
	}

	if len(blobs.deleted) != 1 || blobs.deleted[0] != "members/President/original.png" {
		t.Errorf("original not cleaned up, deleted = %v", blobs.deleted)
	}
}

func TestDeriveSurvivesCleanupFailure(t *testing.T) {
	blobs := newMemBlobs()
	blobs.failDel = true
	m := models.Member{
		Name:      "Rahima Begum",
		Role:      models.RoleMember,
		ImagePath: "members/Member/old.png",
	}

	path, err := Derive(context.Background(), blobs, zap.NewNop(), m, testPNG(t))
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if _, ok := blobs.files[path]; !ok {
		t.Errorf("derived image missing at %q", path)
	}
}

func TestDeriveRejectsGarbage(t *testing.T) {
	blobs := newMemBlobs()
	m := models.Member{Name: "X", Role: models.RoleMember}

	if _, err := Derive(context.Background(), blobs, zap.NewNop(), m, []byte("not an image")); err == nil {
		t.Fatal("want decode error for non-image bytes")
	}
	if len(blobs.files) != 0 {
		t.Errorf("nothing should be stored on decode failure, got %v", blobs.files)
	}
}

func TestDerivedPath(t *testing.T) {
	m := models.Member{Name: "Abdul Karim", Role: models.RoleSecretary}
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	got := DerivedPath(m, at)
	if !strings.HasPrefix(got, "members/Secretary/Abdul_Karim_20250314092653_") {
		t.Errorf("DerivedPath = %q", got)
	}

	// Suffix keeps two saves in the same second apart.
	if again := DerivedPath(m, at); again == got {
		t.Errorf("two paths for the same instant collided: %q", got)
	}
}

func TestStoreOriginal(t *testing.T) {
	blobs := newMemBlobs()
	m := models.Member{Name: "Y", Role: models.RoleTreasurer}

	path, err := StoreOriginal(context.Background(), blobs, m, "../evil name.PNG", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("StoreOriginal: %v", err)
	}
	if path != "members/Treasurer/evil_name.PNG" {
		t.Errorf("path = %q", path)
	}
	if string(blobs.files[path]) != "data" {
		t.Errorf("stored bytes = %q", blobs.files[path])
	}
}
