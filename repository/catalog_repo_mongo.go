package repository

import (
	"context"

	"bookstore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoCatalogRepo struct {
	DB *mongo.Client
}

func NewMongoCatalogRepo(db *mongo.Client) *MongoCatalogRepo {
	return &MongoCatalogRepo{DB: db}
}

func (r *MongoCatalogRepo) categories() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("categories")
}

func (r *MongoCatalogRepo) products() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("products")
}

func (r *MongoCatalogRepo) GetCategories() ([]*models.Category, error) {
	ctx := context.Background()
	cursor, err := r.categories().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var categories []*models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *MongoCatalogRepo) GetCategoryByID(id string) (*models.Category, error) {
	c := &models.Category{}
	err := r.categories().FindOne(context.Background(), bson.M{"id": id}).Decode(c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *MongoCatalogRepo) GetProductsByCategory(categoryID string) ([]*models.Product, error) {
	return r.findProducts(bson.M{"category_id": categoryID})
}

func (r *MongoCatalogRepo) GetProductByID(id string) (*models.Product, error) {
	p := &models.Product{}
	err := r.products().FindOne(context.Background(), bson.M{"id": id}).Decode(p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *MongoCatalogRepo) GetProductsByIDs(ids []string) ([]*models.Product, error) {
	return r.findProducts(bson.M{"id": bson.M{"$in": ids}})
}

func (r *MongoCatalogRepo) findProducts(filter bson.M) ([]*models.Product, error) {
	ctx := context.Background()
	cursor, err := r.products().Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var products []*models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoCatalogRepo) UpdateProduct(id string, upd *models.ProductUpdate) (bool, error) {
	set := bson.M{}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.ImageURL != nil {
		set["image_url"] = *upd.ImageURL
	}
	if len(set) == 0 {
		p, err := r.GetProductByID(id)
		return p != nil, err
	}

	res, err := r.products().UpdateOne(
		context.Background(),
		bson.M{"id": id},
		bson.M{"$set": set},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
