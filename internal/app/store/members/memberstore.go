// Package memberstore persists the member directory in Mongo.
package memberstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/somitihub/somiti/internal/app/system/htmlsanitize"
	"github.com/somitihub/somiti/internal/app/system/inputval"
	"github.com/somitihub/somiti/internal/app/system/normalize"
	"github.com/somitihub/somiti/internal/domain/models"
)

// ErrNotFound is returned when no member matches the requested ID.
var ErrNotFound = errors.New("member not found")

// ErrDuplicatePhone is returned when another member already has the phone number.
var ErrDuplicatePhone = errors.New("a member with this phone number already exists")

// ValidationError carries per-field messages for rejected input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "invalid member" }

// PhoneFormatMessage explains the accepted phone shape to callers.
const PhoneFormatMessage = "Phone number must be entered in the format: '+8801900000000'. Up to 15 digits allowed."

const maxNameLen = 100

type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection("members")}
}

// clean normalizes a member's fields in place and returns field errors,
// or nil when the member is acceptable.
func clean(m *models.Member) map[string]string {
	m.Name = normalize.Name(m.Name)
	m.NameCI = text.Fold(m.Name)
	m.Area = normalize.Area(m.Area)
	m.Phone = normalize.Phone(m.Phone)
	m.Email = normalize.Email(m.Email)
	m.Bio = htmlsanitize.Sanitize(m.Bio)
	if m.Role == "" {
		m.Role = models.DefaultRole
	}

	fields := map[string]string{}
	if m.Name == "" {
		fields["name"] = "This field is required."
	} else if len(m.Name) > maxNameLen {
		fields["name"] = "Ensure this field has no more than 100 characters."
	}
	if !m.Role.Valid() {
		fields["role"] = "Not a valid role."
	}
	if m.Area == "" {
		fields["area"] = "This field is required."
	}
	if m.Phone == "" {
		fields["phone"] = "This field is required."
	} else if !inputval.IsValidPhone(m.Phone) {
		fields["phone"] = PhoneFormatMessage
	}
	if m.Email != "" && !inputval.IsValidEmail(m.Email) {
		fields["email"] = "Enter a valid email address."
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Create validates, normalizes and inserts a member, allocating its
// numeric ID from the members sequence.
func (s *Store) Create(ctx context.Context, m models.Member) (models.Member, error) {
	if fields := clean(&m); fields != nil {
		return models.Member{}, &ValidationError{Fields: fields}
	}

	id, err := nextID(ctx, s.db, "members")
	if err != nil {
		return models.Member{}, err
	}
	m.ID = id
	m.IsActive = true

	now := time.Now()
	if m.JoinedDate.IsZero() {
		m.JoinedDate = now
	}
	m.CreatedAt = now
	m.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Member{}, ErrDuplicatePhone
		}
		return models.Member{}, err
	}
	return m, nil
}

// Get loads a member regardless of active state.
func (s *Store) Get(ctx context.Context, id int64) (*models.Member, error) {
	var m models.Member
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GetActive loads a member only if it is active. Inactive members are
// indistinguishable from missing ones.
func (s *Store) GetActive(ctx context.Context, id int64) (*models.Member, error) {
	var m models.Member
	if err := s.c.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Update validates the replacement state and rewrites the stored
// member, preserving its ID, active flag, join date and creation time.
func (s *Store) Update(ctx context.Context, id int64, m models.Member) (models.Member, error) {
	if fields := clean(&m); fields != nil {
		return models.Member{}, &ValidationError{Fields: fields}
	}

	set := bson.M{
		"name":       m.Name,
		"name_ci":    m.NameCI,
		"role":       m.Role,
		"area":       m.Area,
		"phone":      m.Phone,
		"email":      m.Email,
		"bio":        m.Bio,
		"updated_at": time.Now(),
	}
	if m.ImagePath != "" {
		set["image_path"] = m.ImagePath
	}

	var updated models.Member
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Member{}, ErrNotFound
		}
		if wafflemongo.IsDup(err) {
			return models.Member{}, ErrDuplicatePhone
		}
		return models.Member{}, err
	}
	return updated, nil
}

// SetImagePath records a member's stored image location.
func (s *Store) SetImagePath(ctx context.Context, id int64, path string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"image_path": path, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a member permanently.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleActive flips a member's active flag in a single server-side
// operation and returns the member as it stands after the flip.
func (s *Store) ToggleActive(ctx context.Context, id int64) (*models.Member, error) {
	var m models.Member
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		mongo.Pipeline{
			{{Key: "$set", Value: bson.M{
				"is_active":  bson.M{"$not": "$is_active"},
				"updated_at": "$$NOW",
			}}},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// SetActiveMany sets the active flag on every listed member and returns
// how many documents matched. IDs with no member are simply not counted.
func (s *Store) SetActiveMany(ctx context.Context, ids []int64, active bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := s.c.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"is_active": active, "updated_at": time.Now()}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Count reports how many members match the query.
func (s *Store) Count(ctx context.Context, q Query) (int64, error) {
	return s.c.CountDocuments(ctx, q.Filter())
}

// List returns a page of members matching the query in the requested
// order. A limit of 0 means no limit.
func (s *Store) List(ctx context.Context, q Query, ordering string, skip, limit int64) ([]models.Member, error) {
	opts := options.Find().SetSort(q.Sort(ordering)).SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.c.Find(ctx, q.Filter(), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	members := []models.Member{}
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}
