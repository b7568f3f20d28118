package repository

import (
	"context"
	"errors"
	"fmt"

	"usersapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoUserCollection    = "User"
	mongoCounterCollection = "counters"
)

// MongoUserRepo keeps users as documents with an integer _id drawn from a
// per-collection sequence in the counters collection.
type MongoUserRepo struct {
	DB       *mongo.Client
	Database string
}

func NewMongoUserRepo(db *mongo.Client, database string) *MongoUserRepo {
	return &MongoUserRepo{DB: db, Database: database}
}

func (r *MongoUserRepo) users() *mongo.Collection {
	return r.DB.Database(r.Database).Collection(mongoUserCollection)
}

// nextID atomically bumps and returns the user sequence.
func (r *MongoUserRepo) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.DB.Database(r.Database).Collection(mongoCounterCollection).
		FindOneAndUpdate(ctx,
			bson.M{"_id": mongoUserCollection},
			bson.M{"$inc": bson.M{"seq": 1}},
			options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
		).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func (r *MongoUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	id, err := r.nextID(ctx)
	if err != nil {
		return fmt.Errorf("insert user: next id: %w", err)
	}
	user.ID = id

	if _, err := r.users().InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.users().FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

func (r *MongoUserRepo) ListUsers(ctx context.Context, skip, take int) ([]*models.User, error) {
	users := []*models.User{}
	// A zero limit means "no limit" to Mongo.
	if take <= 0 {
		return users, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(take))

	cur, err := r.users().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("list users: decode: %w", err)
	}
	return users, nil
}

func (r *MongoUserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	res, err := r.users().UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{
			"name":     user.Name,
			"email":    user.Email,
			"password": user.Password,
		}},
	)
	if err != nil {
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepo) DeleteUser(ctx context.Context, id int64) error {
	res, err := r.users().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

var _ UserRepository = (*MongoUserRepo)(nil)
