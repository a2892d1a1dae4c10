// Package imagepipe re-encodes uploaded member images into a compressed
// web-friendly form.
//
// The pipeline is the explicit second phase of a member save: callers
// persist the record first, then hand the uploaded image here, then
// persist the record again with the derived path. A derivation failure
// leaves the record pointing at the original upload; it never rolls
// back the record write.
package imagepipe

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/somitihub/somiti/internal/domain/models"
)

// Quality is the JPEG quality used for derived images.
const Quality = 85

// Blobs is the slice of the file-storage layer the pipeline needs.
// waffle's storage.Store satisfies it.
type Blobs interface {
	Put(ctx context.Context, path string, r io.Reader, opts *storage.PutOptions) error
	Delete(ctx context.Context, path string) error
}

// StoreOriginal writes the raw upload under the member's role namespace
// and returns the stored path. This is the image reference recorded by
// phase one of a save.
func StoreOriginal(ctx context.Context, blobs Blobs, m models.Member, filename string, r io.Reader) (string, error) {
	path := fmt.Sprintf("members/%s/%s", m.Role, sanitizeName(filename))
	if err := blobs.Put(ctx, path, r, &storage.PutOptions{}); err != nil {
		return "", fmt.Errorf("store original image: %w", err)
	}
	return path, nil
}

// Derive re-encodes the original image (supplied as raw bytes) to JPEG
// at the fixed quality, stores it under
// members/<role>/<Name_with_underscores>_<timestamp>_<suffix>.jpg, and
// returns the derived path. The random suffix keeps two saves within the
// same second from colliding.
//
// The original file at m.ImagePath is deleted best-effort: a failed
// delete is logged and otherwise ignored.
func Derive(ctx context.Context, blobs Blobs, log *zap.Logger, m models.Member, original []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(original))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(Quality)); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	derived := DerivedPath(m, time.Now())
	opts := &storage.PutOptions{ContentType: "image/jpeg"}
	if err := blobs.Put(ctx, derived, &buf, opts); err != nil {
		return "", fmt.Errorf("store derived image: %w", err)
	}

	if m.ImagePath != "" && m.ImagePath != derived {
		if err := blobs.Delete(ctx, m.ImagePath); err != nil {
			log.Warn("cleanup of original image failed",
				zap.String("path", m.ImagePath),
				zap.Error(err))
		}
	}

	return derived, nil
}

// DerivedPath builds the role-namespaced filename for a derived image:
// the member's name with spaces replaced by underscores, a
// second-resolution timestamp, and a short random suffix.
func DerivedPath(m models.Member, now time.Time) string {
	name := strings.ReplaceAll(m.Name, " ", "_")
	stamp := now.Format("20060102150405")
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("members/%s/%s_%s_%s.jpg", m.Role, name, stamp, suffix)
}

// sanitizeName strips path components and replaces characters that are
// unsafe in storage keys.
func sanitizeName(filename string) string {
	if i := strings.LastIndexAny(filename, `/\`); i >= 0 {
		filename = filename[i+1:]
	}
	var b strings.Builder
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '-', c == '_', c == '.':
			b.WriteByte(c)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}
