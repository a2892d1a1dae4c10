package membersapi

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/somitihub/somiti/internal/domain/models"
)

// maxUploadSize caps the request body for multipart submissions.
const maxUploadSize = 10 << 20 // 10 MiB

// memberInput carries a create or update request. Pointer fields
// distinguish "absent" from "set to empty" so the same type serves
// full and partial updates. joined_date, like id and the timestamps,
// is read-only and silently ignored when a body carries it.
type memberInput struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Area  *string `json:"area"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
	Bio   *string `json:"bio"`
}

// upload is a decoded image attachment from a multipart submission.
type upload struct {
	Filename string
	Data     []byte
}

var errBadBody = errors.New("malformed request body")

// parseInput reads a member payload from either a JSON body or a
// multipart form. A multipart form may also carry an "image" file.
func parseInput(r *http.Request) (memberInput, *upload, error) {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt == "multipart/form-data" {
		return parseMultipart(r)
	}

	var in memberInput
	dec := json.NewDecoder(io.LimitReader(r.Body, maxUploadSize))
	if err := dec.Decode(&in); err != nil {
		return memberInput{}, nil, errBadBody
	}
	return in, nil, nil
}

func parseMultipart(r *http.Request) (memberInput, *upload, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return memberInput{}, nil, errBadBody
	}

	var in memberInput
	field := func(name string) *string {
		vals, ok := r.MultipartForm.Value[name]
		if !ok || len(vals) == 0 {
			return nil
		}
		return &vals[0]
	}
	in.Name = field("name")
	in.Role = field("role")
	in.Area = field("area")
	in.Phone = field("phone")
	in.Email = field("email")
	in.Bio = field("bio")

	file, hdr, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return in, nil, nil
		}
		return memberInput{}, nil, errBadBody
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		return memberInput{}, nil, errBadBody
	}
	return in, &upload{Filename: hdr.Filename, Data: data}, nil
}

// apply overlays the provided fields onto a member. Absent fields are
// left alone, which gives partial-update semantics for free.
func (in memberInput) apply(m *models.Member) {
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Role != nil {
		m.Role = models.Role(*in.Role)
	}
	if in.Area != nil {
		m.Area = *in.Area
	}
	if in.Phone != nil {
		m.Phone = *in.Phone
	}
	if in.Email != nil {
		m.Email = *in.Email
	}
	if in.Bio != nil {
		m.Bio = *in.Bio
	}
}
