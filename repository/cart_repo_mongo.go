package repository

import (
	"context"

	"bookstore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoCartRepo struct {
	DB *mongo.Client
}

func NewMongoCartRepo(db *mongo.Client) *MongoCartRepo {
	return &MongoCartRepo{DB: db}
}

func (r *MongoCartRepo) items() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("cart_items")
}

func (r *MongoCartRepo) GetItems() ([]*models.CartItem, error) {
	ctx := context.Background()
	cursor, err := r.items().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var items []*models.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoCartRepo) GetItem(productID string) (*models.CartItem, error) {
	item := &models.CartItem{}
	err := r.items().FindOne(context.Background(), bson.M{"product_id": productID}).Decode(item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

func (r *MongoCartRepo) AddItem(item *models.CartItem) error {
	_, err := r.items().InsertOne(context.Background(), item)
	return err
}

func (r *MongoCartRepo) IncrementQuantity(productID string, delta int) error {
	_, err := r.items().UpdateOne(
		context.Background(),
		bson.M{"product_id": productID},
		bson.M{"$inc": bson.M{"quantity": delta}},
	)
	return err
}

func (r *MongoCartRepo) SetQuantity(productID string, quantity int) error {
	_, err := r.items().UpdateOne(
		context.Background(),
		bson.M{"product_id": productID},
		bson.M{"$set": bson.M{"quantity": quantity}},
	)
	return err
}

func (r *MongoCartRepo) RemoveItem(productID string) error {
	_, err := r.items().DeleteOne(context.Background(), bson.M{"product_id": productID})
	return err
}

func (r *MongoCartRepo) Clear() error {
	_, err := r.items().DeleteMany(context.Background(), bson.M{})
	return err
}
