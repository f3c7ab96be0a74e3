package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/harentsoaR/legalbook-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const UsersCollection = "users"

// UserStore is the data access contract behind the user endpoints.
type UserStore interface {
	All(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, bool, error)
	DeleteByID(ctx context.Context, id string) error
}

var _ UserStore = (*MongoUserStore)(nil)

type MongoUserStore struct {
	coll *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{coll: db.Collection(UsersCollection)}
}

// EnsureIndexes creates the lookup index on email. The index is not unique:
// duplicate emails are tolerated by the data model.
func (s *MongoUserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_1"),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (s *MongoUserStore) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// FindByEmail returns the first document whose email matches. found is false
// when no document matches; that case is not an error.
func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (models.User, bool, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, fmt.Errorf("find user by email: %w", err)
	}
	return user, true, nil
}

// DeleteByID removes the document with the given id. Deleting an id that does
// not exist succeeds without touching the collection.
func (s *MongoUserStore) DeleteByID(ctx context.Context, id string) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": idValue(id)})
	if err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		log.Printf("DeleteByID: no user with id %s, nothing deleted", id)
	}
	return nil
}

// Insert stores a new user, assigning its id and creation timestamp when unset.
func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt == "" {
		user.CreatedAt = models.NewTimestamp(time.Now())
	}
	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user %s: %w", user.Email, err)
	}
	return nil
}

// idValue matches hex ids as ObjectIDs and anything else as a raw string id.
func idValue(id string) interface{} {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}
