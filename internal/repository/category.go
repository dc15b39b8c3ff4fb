package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"velvethome-backend/internal/model"
)

type CategoryRepository interface {
	// FindActive lists active categories sorted by name. Product counts are
	// derived per call via $lookup; withProducts keeps the joined products on
	// the result instead of just the count.
	FindActive(ctx context.Context, withProducts bool) ([]*model.Category, error)
}

type categoryRepoImpl struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &categoryRepoImpl{col: db.Collection("categories")}
}

func (r *categoryRepoImpl) FindActive(ctx context.Context, withProducts bool) ([]*model.Category, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": model.StatusActive}}},
		{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "_id",
			"foreignField": "category",
			"as":           "products",
		}}},
		{{Key: "$addFields", Value: bson.M{"productCount": bson.M{"$size": "$products"}}}},
	}

	if withProducts {
		pipeline = append(pipeline, bson.D{{Key: "$addFields", Value: bson.M{
			"products": bson.M{"$map": bson.M{
				"input": "$products",
				"as":    "p",
				"in": bson.M{
					"_id":    "$$p._id",
					"name":   "$$p.name",
					"price":  "$$p.price",
					"stock":  "$$p.stock",
					"images": "$$p.images",
					"status": "$$p.status",
				},
			}},
		}}})
	} else {
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.M{"products": 0}}})
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var categories []*model.Category
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
