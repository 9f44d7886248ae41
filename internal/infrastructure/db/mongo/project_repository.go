package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sounddesk/client-portal/internal/core/domain"
	"github.com/sounddesk/client-portal/internal/core/ports"
)

const projectsCollection = "projects"

// ProjectRepository stores project documents with a string hex _id so the
// same struct round-trips through both bson and the JSON API.
type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectsCollection)}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *project
	if created.ID == "" {
		created.ID = primitive.NewObjectID().Hex()
	}
	if created.Version == 0 {
		created.Version = 1
	}

	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return &created, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Project
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return &p, nil
}

func (r *ProjectRepository) FindNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1})
	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("find project names: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc struct {
			ID   string `bson:"_id"`
			Name string `bson:"name"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode project name: %w", err)
		}
		names[doc.ID] = doc.Name
	}
	return names, cur.Err()
}

// Update applies a shallow top-level $set and bumps the version counter in
// one FindOneAndUpdate. When the patch carries a version, it joins the filter
// so a concurrent edit makes the write miss and surface as a conflict.
func (r *ProjectRepository) Update(ctx context.Context, id string, patch ports.ProjectPatch) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Active != nil {
		set["active"] = *patch.Active
	}
	if patch.Scope != nil {
		set["scope"] = *patch.Scope
	}
	if patch.Production != nil {
		set["html"] = *patch.Production
	}
	if patch.Visual != nil {
		set["css"] = *patch.Visual
	}
	if patch.Release != nil {
		set["js"] = *patch.Release
	}

	filter := bson.M{"_id": id}
	if patch.Version != nil {
		filter["version"] = *patch.Version
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated domain.Project
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{
		"$set": set,
		"$inc": bson.M{"version": 1},
	}, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update project: %w", err)
	}

	// the write missed: either the document is gone or the version moved
	n, countErr := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if countErr != nil {
		return nil, fmt.Errorf("update project: %w", countErr)
	}
	if n > 0 {
		return nil, domain.ErrVersionConflict
	}
	return nil, domain.ErrProjectNotFound
}

func (r *ProjectRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("delete projects: %w", err)
	}
	return nil
}
