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
)

const (
	clientsCollection  = "clients"
	countersCollection = "counters"
	signupCounterID    = "signup_seq"
)

type ClientRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{
		coll:     db.Collection(clientsCollection),
		counters: db.Collection(countersCollection),
	}
}

type mongoClient struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	IsAdmin      bool               `bson:"isAdmin"`
	Status       string             `bson:"status"`
	ProjectID    string             `bson:"project,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (mc mongoClient) toDomain() *domain.Client {
	return &domain.Client{
		ID:           mc.ID.Hex(),
		Name:         mc.Name,
		Email:        mc.Email,
		PasswordHash: mc.PasswordHash,
		IsAdmin:      mc.IsAdmin,
		Status:       domain.ClientStatus(mc.Status),
		ProjectID:    mc.ProjectID,
		CreatedAt:    mc.CreatedAt,
		UpdatedAt:    mc.UpdatedAt,
	}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoClient{
		Name:         client.Name,
		Email:        client.Email,
		PasswordHash: client.PasswordHash,
		IsAdmin:      client.IsAdmin,
		Status:       string(client.Status),
		ProjectID:    client.ProjectID,
		CreatedAt:    client.CreatedAt,
		UpdatedAt:    client.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}

	created := *client
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"email": email}, domain.ErrClientNotFound)
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid}, domain.ErrClientNotFound)
}

func (r *ClientRepository) FindAdmin(ctx context.Context) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"isAdmin": true}, domain.ErrAdminNotFound)
}

func (r *ClientRepository) FindByProjectID(ctx context.Context, projectID string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"project": projectID}, domain.ErrClientNotFound)
}

func (r *ClientRepository) findOne(ctx context.Context, filter bson.M, notFound error) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoClient
	if err := r.coll.FindOne(ctx, filter).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *ClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"isAdmin": false})
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	var clients []domain.Client
	for cur.Next(ctx) {
		var mc mongoClient
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		clients = append(clients, *mc.toDomain())
	}
	return clients, cur.Err()
}

// NextSignupSeq bumps and returns the registration sequence in a single
// FindOneAndUpdate, making "first registrant is admin" race-free.
func (r *ClientRepository) NextSignupSeq(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": signupCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("signup sequence: %w", err)
	}
	return counter.Seq, nil
}

func (r *ClientRepository) SetProject(ctx context.Context, clientID, projectID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(clientID)
	if err != nil {
		return domain.ErrClientNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"project": projectID, "updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("set project: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete clients: %w", err)
	}
	if _, err := r.counters.DeleteOne(ctx, bson.M{"_id": signupCounterID}); err != nil {
		return fmt.Errorf("reset signup sequence: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique email index backing case-insensitive
// uniqueness (emails are stored lowercased).
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
