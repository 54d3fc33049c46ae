package repository

import (
	"context"
	"time"

	"bookstore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "bookstore"

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) users() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("users")
}

// nextUserID hands out sequential ids from a counters document, keeping
// the numeric id shape the Postgres backend gets from SERIAL.
func (r *MongoUserRepo) nextUserID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.DB.Database(mongoDatabase).Collection("counters").FindOneAndUpdate(
		ctx,
		bson.M{"_id": "users"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func (r *MongoUserRepo) CreateUser(user *models.User) error {
	ctx := context.Background()
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	id, err := r.nextUserID(ctx)
	if err != nil {
		return err
	}
	user.ID = id

	_, err = r.users().InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *MongoUserRepo) GetUserByEmail(email string) (*models.User, error) {
	return r.getUser(bson.M{"email": email})
}

func (r *MongoUserRepo) GetUserByID(id int64) (*models.User, error) {
	return r.getUser(bson.M{"id": id})
}

func (r *MongoUserRepo) getUser(filter bson.M) (*models.User, error) {
	user := &models.User{}
	err := r.users().FindOne(context.Background(), filter).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *MongoUserRepo) UpdateLastLogin(id int64) error {
	now := time.Now().UTC()
	_, err := r.users().UpdateOne(
		context.Background(),
		bson.M{"id": id},
		bson.M{"$set": bson.M{"last_login": now}},
	)
	return err
}

func (r *MongoUserRepo) ResetPassword(id int64, passwordHash string) error {
	ctx := context.Background()
	session, err := r.DB.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.users().UpdateOne(
			sc,
			bson.M{"id": id},
			bson.M{"$set": bson.M{"password_hash": passwordHash}},
		); err != nil {
			return nil, err
		}

		tokens := r.DB.Database(mongoDatabase).Collection("user_tokens")
		if _, err := tokens.DeleteMany(sc, bson.M{
			"user_id":    id,
			"token_type": models.TokenTypePasswordReset,
		}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}
