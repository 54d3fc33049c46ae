package repository

import (
	"context"

	"bookstore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoTokenRepo struct {
	DB *mongo.Client
}

func NewMongoTokenRepo(db *mongo.Client) *MongoTokenRepo {
	return &MongoTokenRepo{DB: db}
}

func (r *MongoTokenRepo) tokens() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("user_tokens")
}

func (r *MongoTokenRepo) ReplaceResetToken(token *models.UserToken) error {
	ctx := context.Background()
	session, err := r.DB.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.tokens().DeleteMany(sc, bson.M{
			"user_id":    token.UserID,
			"token_type": token.TokenType,
		}); err != nil {
			return nil, err
		}
		if _, err := r.tokens().InsertOne(sc, token); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

func (r *MongoTokenRepo) GetToken(token, tokenType string) (*models.UserToken, error) {
	row := &models.UserToken{}
	err := r.tokens().FindOne(context.Background(), bson.M{
		"token":      token,
		"token_type": tokenType,
	}).Decode(row)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}
